package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request ID
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key for the request ID
const RequestIDKey = "request_id"

// RequestID attaches a request ID to every request. A caller-provided
// X-Request-ID is trusted and echoed back; otherwise one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID set by the RequestID middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
