package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := baseConfig()

	assert.Equal(t, "finbooks-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins, "CORS origins must not default to a wildcard")
	assert.NotEmpty(t, cfg.HTTP.CORSAllowMethods)
}

func TestValidate(t *testing.T) {
	t.Run("accepts defaults in development", func(t *testing.T) {
		cfg := baseConfig()

		assert.NoError(t, cfg.validate())
	})

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns + 1

		assert.Error(t, cfg.validate())
	})

	t.Run("production requires a long jwt secret", func(t *testing.T) {
		cfg := baseConfig()
		cfg.App.Env = "production"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"

		cfg.JWT.Secret = ""
		assert.Error(t, cfg.validate())

		cfg.JWT.Secret = "short"
		assert.Error(t, cfg.validate())

		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		assert.NoError(t, cfg.validate())
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		cfg := baseConfig()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		cfg.Database.Password = "secret"

		err := cfg.validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("production rejects wildcard cors origin", func(t *testing.T) {
		cfg := baseConfig()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}

		assert.Error(t, cfg.validate())
	})
}

func TestDSN(t *testing.T) {
	d := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "finbooks",
		Password: "p@ss/word",
		DBName:   "finbooks",
		SSLMode:  "require",
	}

	dsn := d.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word", "password must be escaped")
}

func TestRedisAddr(t *testing.T) {
	r := &RedisConfig{Host: "cache.internal", Port: 6380}

	assert.Equal(t, "cache.internal:6380", r.Addr())
}
