package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	Checker ReadinessChecker
	Logger  *logrus.Logger
}

func NewHealthHandler(checker ReadinessChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Checker: checker, Logger: logger}
}

// Health GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	if h.Checker != nil {
		if err := h.Checker.Ready(c.Request.Context()); err != nil {
			if h.Logger != nil {
				h.Logger.WithError(err).Warn("readiness check failed")
			}
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
