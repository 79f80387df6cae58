package handler

import (
	"net/http"

	"github.com/finbooks/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports service and database health.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}

// RegisterRoutes wires the health endpoint.
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
