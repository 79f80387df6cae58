package auth

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-that-is-long-enough-0123",
		AccessTokenExpiration: 24 * time.Hour,
		Issuer:                "finbooks-test",
	})
}

func testInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:       "u-1",
		Username:     "kashif",
		Role:         "admin",
		CompanyCode:  "01",
		LocationCode: "01",
		YearCode:     "01",
	}
}

func TestGenerateToken(t *testing.T) {
	svc := newTestService()

	t.Run("issues a bearer token with scope claims", func(t *testing.T) {
		token, err := svc.GenerateToken(testInput())

		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), token.ExpiresAt, time.Minute)

		claims, err := svc.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, "kashif", claims.Username)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "01", claims.CompanyCode)
		assert.Equal(t, "01", claims.LocationCode)
		assert.Equal(t, "01", claims.YearCode)
		assert.NotEmpty(t, claims.ID, "jti must be set for revocation")
	})

	t.Run("tokens get unique jtis", func(t *testing.T) {
		a, err := svc.GenerateToken(testInput())
		require.NoError(t, err)
		b, err := svc.GenerateToken(testInput())
		require.NoError(t, err)

		ca, err := svc.ValidateToken(a.AccessToken)
		require.NoError(t, err)
		cb, err := svc.ValidateToken(b.AccessToken)
		require.NoError(t, err)
		assert.NotEqual(t, ca.ID, cb.ID)
	})
}

func TestValidateToken(t *testing.T) {
	svc := newTestService()

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret-value",
			AccessTokenExpiration: time.Hour,
			Issuer:                "finbooks-test",
		})
		token, err := other.GenerateToken(testInput())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.AccessToken)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-that-is-long-enough-0123",
			AccessTokenExpiration: -time.Minute,
			Issuer:                "finbooks-test",
		})
		token, err := expired.GenerateToken(testInput())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.AccessToken)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestClaimsRemainingTTL(t *testing.T) {
	svc := newTestService()
	token, err := svc.GenerateToken(testInput())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 23*time.Hour)
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	t.Run("unknown jti is not revoked", func(t *testing.T) {
		revoked, err := bl.IsRevoked(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("revoked jti is reported", func(t *testing.T) {
		require.NoError(t, bl.Revoke(ctx, "jti-1", time.Minute))

		revoked, err := bl.IsRevoked(ctx, "jti-1")

		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("lapsed entries drop off", func(t *testing.T) {
		require.NoError(t, bl.Revoke(ctx, "jti-2", -time.Second))

		revoked, err := bl.IsRevoked(ctx, "jti-2")

		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
