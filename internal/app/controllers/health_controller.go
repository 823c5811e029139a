package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/champlain/campus/internal/pkg/logger"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness and readiness probes
type HealthController struct {
	store   Pinger
	timeout time.Duration
}

// NewHealthController creates a HealthController checking store
func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store, timeout: 2 * time.Second}
}

// Ping always answers pong
func (h *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health pings the store
func (h *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "UP"})
}
