package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/internal/application"
	"github.com/oksasatya/go-hexagonal-auth/internal/interface/middleware"
	"github.com/oksasatya/go-hexagonal-auth/pkg/response"
)

type ProfileReader interface {
	GetProfile(ctx context.Context, userPublicID string) (*application.UserProfileResult, error)
}

type UserHandler struct {
	Profiles ProfileReader
	Logger   *logrus.Logger
}

func NewUserHandler(profiles ProfileReader, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Profiles: profiles, Logger: logger}
}

// Me GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.Unauthorized(c)
		return
	}

	p, err := h.Profiles.GetProfile(c.Request.Context(), uid)
	if err != nil {
		count(false, metricProfileOK, metricProfileFail)
		respondError(c, h.Logger, err)
		return
	}
	count(true, metricProfileOK, metricProfileFail)
	response.Success(c, http.StatusOK, p)
}
