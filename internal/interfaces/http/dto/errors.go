package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeTokenExpired       = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "ERR_TOKEN_INVALID"
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
)

// Resource error codes
const (
	ErrCodeNotFound          = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists     = "ERR_ALREADY_EXISTS"
	ErrCodeConflict          = "ERR_CONFLICT"
	ErrCodeReferenceConflict = "ERR_REFERENCE_CONFLICT"
	ErrCodeInvalidState      = "ERR_INVALID_STATE"
	ErrCodeBusinessRule      = "ERR_BUSINESS_RULE"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeValidation   = "ERR_VALIDATION"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Delete conflicts answer 400 with the dependency report so the
	// client can show the operator what still references the record.
	ErrCodeReferenceConflict: http.StatusBadRequest,

	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to transport codes.
// Domain codes not listed here normalize to the generic business-rule
// code and answer 422.
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":           ErrCodeNotFound,
	"ALREADY_EXISTS":      ErrCodeAlreadyExists,
	"INVALID_INPUT":       ErrCodeInvalidInput,
	"INVALID_STATE":       ErrCodeInvalidState,
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"FORBIDDEN":           ErrCodeForbidden,
	"INVALID_CREDENTIALS": ErrCodeInvalidCredentials,
	"INTERNAL_ERROR":      ErrCodeInternal,

	// Duplicate natural keys surface as conflicts.
	"COMPANY_EXISTS":        ErrCodeAlreadyExists,
	"LOCATION_EXISTS":       ErrCodeAlreadyExists,
	"FINANCIAL_YEAR_EXISTS": ErrCodeAlreadyExists,
	"ITEM_CODE_EXISTS":      ErrCodeAlreadyExists,
	"USERNAME_EXISTS":       ErrCodeAlreadyExists,

	"ACCOUNT_HAS_CHILDREN": ErrCodeBusinessRule,
}

// NormalizeErrorCode converts a domain error code to the transport format.
// Validation codes follow the INVALID_ prefix convention and answer 400;
// other unmapped domain codes map to the generic business-rule code.
func NormalizeErrorCode(code string) string {
	if transportCode, ok := DomainErrorCodeMapping[code]; ok {
		return transportCode
	}
	if strings.HasPrefix(code, "INVALID_") {
		return ErrCodeInvalidInput
	}
	return ErrCodeBusinessRule
}
