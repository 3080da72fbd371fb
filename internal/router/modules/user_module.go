package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	handlers "github.com/oksasatya/go-hexagonal-auth/internal/interface/http"
	"github.com/oksasatya/go-hexagonal-auth/internal/interface/middleware"
)

// UserModule wires the protected user routes:
// GET /api/users/me (bearer access token, role USER or ADMIN)
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleUser.String(), entity.RoleAdmin.String()))
	{
		users.GET("/me", m.Handler.Me)
	}
}
