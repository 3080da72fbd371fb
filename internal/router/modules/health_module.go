package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-hexagonal-auth/internal/interface/http"
)

// HealthModule serves GET /healthz.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.Handler.Health)
	rg.HEAD("/healthz", m.Handler.Health)
}
