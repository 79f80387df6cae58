package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEndpoints_Login(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"username": "admin",
			"password": "admin-secret",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var login struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			User        struct {
				Username string `json:"username"`
			} `json:"user"`
		}
		decodeData(t, w, &login)
		assert.NotEmpty(t, login.AccessToken)
		assert.Equal(t, "Bearer", login.TokenType)
		assert.Equal(t, "admin", login.User.Username)
		assert.NotContains(t, w.Body.String(), "password_hash")
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		wrongPass := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"username": "admin",
			"password": "nope",
		})
		unknownUser := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"username": "ghost",
			"password": "nope",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

		wrongCode, _ := decodeError(t, wrongPass)
		unknownCode, _ := decodeError(t, unknownUser)
		assert.Equal(t, wrongCode, unknownCode)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"username": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthEndpoints_MeAndLogout(t *testing.T) {
	env := newTestEnv(t)

	t.Run("me returns the authenticated profile", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/auth/me", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var me struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		}
		decodeData(t, w, &me)
		assert.Equal(t, "admin", me.Username)
		assert.Equal(t, "admin", me.Role)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, "/api/v1/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthEndpoints_ChangePassword(t *testing.T) {
	env := newTestEnv(t)

	t.Run("wrong current password rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/v1/auth/password", map[string]any{
			"current_password": "nope",
			"new_password":     "fresh-secret",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("password change takes effect at next login", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/v1/auth/password", map[string]any{
			"current_password": "admin-secret",
			"new_password":     "fresh-secret",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		old := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"username": "admin",
			"password": "admin-secret",
		})
		assert.Equal(t, http.StatusUnauthorized, old.Code)

		fresh := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"username": "admin",
			"password": "fresh-secret",
		})
		assert.Equal(t, http.StatusOK, fresh.Code)
	})
}
