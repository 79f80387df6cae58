package handler

import (
	"errors"
	"net/http"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/logger"
	"github.com/finbooks/backend/internal/interfaces/http/dto"
	"github.com/finbooks/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// BindingError sends a 400 response for a request binding failure,
// with per-field details when the failure came from validation tags.
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		middleware.FormatValidationErrors(err, middleware.GetRequestID(c)))
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts service errors to HTTP responses. Reference
// conflicts carry the dependency report in the error details so the
// caller can see what still points at the record.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	requestID := middleware.GetRequestID(c)

	var refErr *shared.ReferenceConflictError
	if errors.As(err, &refErr) {
		c.JSON(dto.GetHTTPStatus(dto.ErrCodeReferenceConflict),
			dto.NewErrorResponseWithDetails(dto.ErrCodeReferenceConflict, refErr.Error(), requestID, refErr))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code),
			dto.NewErrorResponseWithRequestID(code, domainErr.Message, requestID))
		return
	}

	logger.GetGinLogger(c).Error("unhandled service error", zap.Error(err))
	h.InternalError(c, "An unexpected error occurred")
}

// bindListFilter reads common list query parameters into a repository filter.
func bindListFilter(c *gin.Context) (shared.Filter, error) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}

	filter := shared.Filter{
		Page:      req.Page,
		PageSize:  req.PageSize,
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	filter.Normalize()
	return filter, nil
}

// bindID reads and validates the :id path parameter.
func bindID(c *gin.Context) (string, error) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		return "", err
	}
	return req.ID, nil
}
