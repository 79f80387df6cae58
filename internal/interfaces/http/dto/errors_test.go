package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("known codes", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeAlreadyExists))
		assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeInvalidCredentials))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeReferenceConflict))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeBusinessRule))
	})

	t.Run("unknown code resolves to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_NO_SUCH_CODE"))
	})
}

func TestNormalizeErrorCode(t *testing.T) {
	t.Run("duplicate natural keys become conflicts", func(t *testing.T) {
		for _, code := range []string{"COMPANY_EXISTS", "LOCATION_EXISTS", "FINANCIAL_YEAR_EXISTS", "ITEM_CODE_EXISTS", "USERNAME_EXISTS"} {
			assert.Equal(t, ErrCodeAlreadyExists, NormalizeErrorCode(code), code)
		}
	})

	t.Run("credentials failure stays a 401 code", func(t *testing.T) {
		code := NormalizeErrorCode("INVALID_CREDENTIALS")
		assert.Equal(t, ErrCodeInvalidCredentials, code)
		assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(code))
	})

	t.Run("validation codes answer 400", func(t *testing.T) {
		for _, code := range []string{"INVALID_YEAR_SPAN", "INVALID_COMPANY_CODE", "INVALID_LOCATION_NAME"} {
			normalized := NormalizeErrorCode(code)
			assert.Equal(t, ErrCodeInvalidInput, normalized, code)
			assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(normalized))
		}
	})

	t.Run("unmapped domain code falls back to business rule", func(t *testing.T) {
		code := NormalizeErrorCode("SOMETHING_DOMAIN_SPECIFIC")
		assert.Equal(t, ErrCodeBusinessRule, code)
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(code))
	})
}
