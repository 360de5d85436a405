package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probe
type HealthHandler struct {
	database HealthChecker
	logger   coreport.Logger
	timeout  time.Duration
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(database HealthChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		database: database,
		logger:   logger,
		timeout:  2 * time.Second,
	}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.database.HealthCheck(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
