package middleware

import (
	"net/http"
	"strings"

	"github.com/finbooks/backend/internal/infrastructure/auth"
	"github.com/finbooks/backend/internal/infrastructure/logger"
	"github.com/finbooks/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTConfig holds configuration for the JWT middleware
type JWTConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional; when set, revoked tokens are rejected.
	Blacklist auth.TokenBlacklist
	// SkipPaths are exact paths that don't require authentication.
	SkipPaths []string
	Logger    *zap.Logger
}

// DefaultSkipPaths are the public endpoints.
func DefaultSkipPaths() []string {
	return []string{
		"/health",
		"/api/v1/health",
		"/api/v1/auth/login",
	}
}

// JWTAuth creates JWT authentication middleware.
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		tokenString, ok := extractBearerToken(c)
		if !ok {
			abortUnauthorized(c, "Missing or malformed authorization header")
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		if cfg.Blacklist != nil && claims.ID != "" {
			revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail open on blacklist backend errors so an outage
				// does not lock everyone out. Revocation is best effort.
				if cfg.Logger != nil {
					cfg.Logger.Error("token blacklist check failed",
						zap.String("jti", claims.ID), zap.Error(err))
				}
			} else if revoked {
				abortUnauthorized(c, "Token has been revoked")
				return
			}
		}

		c.Set(JWTClaimsKey, claims)

		// Enrich the request context so downstream logs carry the
		// tenant scope and acting user.
		ctx := c.Request.Context()
		reqLogger := logger.FromContext(ctx)
		if claims.CompanyCode != "" {
			ctx, reqLogger = logger.WithCompanyCode(ctx, reqLogger, claims.CompanyCode)
		}
		ctx, _ = logger.WithUserID(ctx, reqLogger, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(AuthHeaderKey)
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, BearerPrefix)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, GetRequestID(c)))
}

// GetClaims returns the validated JWT claims, or nil outside an
// authenticated request.
func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(JWTClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// GetUserID returns the authenticated user's ID, or "".
func GetUserID(c *gin.Context) string {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// GetCompanyCode returns the company scope of the token, or "".
func GetCompanyCode(c *gin.Context) string {
	if claims := GetClaims(c); claims != nil {
		return claims.CompanyCode
	}
	return ""
}
