package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates console logger", func(t *testing.T) {
		l, err := New(&Config{Level: "debug", Format: "console", Output: "stdout"})

		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("creates json logger", func(t *testing.T) {
		l, err := New(&Config{Level: "warn", Format: "json", Output: "stderr"})

		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestContextScoping(t *testing.T) {
	ctx := context.Background()

	t.Run("missing logger falls back to nop", func(t *testing.T) {
		assert.NotNil(t, FromContext(ctx))
	})

	t.Run("round trips through context", func(t *testing.T) {
		l := zap.NewNop()
		ctx := WithContext(context.Background(), l)

		assert.Same(t, l, FromContext(ctx))
	})

	t.Run("company code enrichment", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx, enriched := WithCompanyCode(context.Background(), zap.New(core), "01")

		enriched.Info("scoped")

		assert.Equal(t, "01", GetCompanyCode(ctx))
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "01", logs.All()[0].ContextMap()["company_code"])
	})

	t.Run("user id enrichment", func(t *testing.T) {
		ctx, _ := WithUserID(context.Background(), zap.NewNop(), "u-1")

		assert.Equal(t, "u-1", GetUserID(ctx))
	})
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs successful requests at info", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		r := gin.New()
		r.Use(GinMiddleware(zap.New(core)))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		assert.Equal(t, "/ping", entry.ContextMap()["path"])
	})

	t.Run("logs server errors at error", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		r := gin.New()
		r.Use(GinMiddleware(zap.New(core)))
		r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("recovery converts panic to 500", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		r := gin.New()
		r.Use(Recovery(zap.New(core)))
		r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "Panic recovered", logs.All()[0].Message)
	})
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("anything"))
}
