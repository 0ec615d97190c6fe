package handler

import (
	"context"
	"net/http"
	"time"

	"traveling-message/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health.
type HealthHandler struct {
	checkers []ports.HealthChecker
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(checkers ...ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers}
}

// Health pings every dependency and reports per-dependency status.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checkers))
	for _, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			deps[checker.Name()] = "down"
			status = http.StatusServiceUnavailable
		} else {
			deps[checker.Name()] = "up"
		}
	}

	body := gin.H{"status": "ok", "dependencies": deps}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
