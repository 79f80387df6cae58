package router

import (
	"github.com/finbooks/backend/internal/infrastructure/auth"
	"github.com/finbooks/backend/internal/infrastructure/config"
	"github.com/finbooks/backend/internal/infrastructure/logger"
	"github.com/finbooks/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar registers a handler's routes on the API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config carries the router's dependencies
type Config struct {
	HTTP       config.HTTPConfig
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Logger     *zap.Logger
}

// New builds the gin engine with the standard middleware chain and
// registers all handlers under /api/v1.
func New(cfg Config, registrars ...RouteRegistrar) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(middleware.SecurityHeaders())

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.Use(middleware.JWTAuth(middleware.JWTConfig{
		JWTService: cfg.JWTService,
		Blacklist:  cfg.Blacklist,
		SkipPaths:  middleware.DefaultSkipPaths(),
		Logger:     cfg.Logger,
	}))

	api := engine.Group("/api/v1")
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}

	return engine
}
