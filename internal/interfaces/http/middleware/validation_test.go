package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type createRequest struct {
		Name string `json:"name" binding:"required,min=3"`
		Role string `json:"role" binding:"required,oneof=admin user"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, FormatValidationErrors(err, "req-1"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("reports each failing field by json tag name", func(t *testing.T) {
		body := strings.NewReader(`{"name": "ab", "role": "owner"}`)
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string                 `json:"code"`
				Message string                 `json:"message"`
				Details []dto.ValidationDetail `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "name", resp.Error.Details[0].Field)
		assert.Equal(t, "Must be at least 3 characters", resp.Error.Details[0].Message)
		assert.Equal(t, "role", resp.Error.Details[1].Field)
		assert.Equal(t, "Must be one of: admin user", resp.Error.Details[1].Message)
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"name": "alice", "role": "user"}`)
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-validator errors carry no field details", func(t *testing.T) {
		body := strings.NewReader(`{"name": 12}`)
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotContains(t, w.Body.String(), `"field"`)
	})
}
