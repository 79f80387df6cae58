package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbooks/backend/internal/infrastructure/auth"
	"github.com/finbooks/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars!!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "finbooks-test",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService) *auth.Token {
	t.Helper()
	token, err := svc.GenerateToken(auth.GenerateTokenInput{
		UserID:      "user-1",
		Username:    "admin",
		Role:        "admin",
		CompanyCode: "01",
	})
	require.NoError(t, err)
	return token
}

func newAuthedRouter(cfg JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), JWTAuth(cfg))
	r.GET("/api/v1/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "company_code": GetCompanyCode(c)})
	})
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	svc := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	router := newAuthedRouter(JWTConfig{
		JWTService: svc,
		Blacklist:  blacklist,
		SkipPaths:  DefaultSkipPaths(),
	})

	t.Run("valid token passes and exposes claims", func(t *testing.T) {
		token := issueToken(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
		assert.Contains(t, w.Body.String(), `"company_code":"01"`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"not-a-jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		token := issueToken(t, svc)
		claims, err := svc.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.Revoke(context.Background(), claims.ID, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skip path bypasses auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
