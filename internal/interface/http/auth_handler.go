package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/internal/application"
	"github.com/oksasatya/go-hexagonal-auth/pkg/helpers"
	"github.com/oksasatya/go-hexagonal-auth/pkg/response"
	"github.com/oksasatya/go-hexagonal-auth/pkg/validation"
)

type Registerer interface {
	Register(ctx context.Context, cmd application.RegisterUserCommand) (*application.RegisterUserResult, error)
}

type LoginAuthenticator interface {
	Login(ctx context.Context, cmd application.LoginUserCommand) (*application.LoginUserResult, error)
}

type AuthHandler struct {
	Registration Registerer
	Login        LoginAuthenticator
	Logger       *logrus.Logger
	Cookies      *helpers.Manager
}

func NewAuthHandler(reg Registerer, login LoginAuthenticator, logger *logrus.Logger, cookies *helpers.Manager) *AuthHandler {
	return &AuthHandler{Registration: reg, Login: login, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,personname"`
}

type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// HandleRegister POST /api/auth/register
func (h *AuthHandler) HandleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		count(false, metricRegisterOK, metricRegisterFail)
		respondBindError(c, h.Logger, validation.ToDetails(err))
		return
	}

	res, err := h.Registration.Register(c.Request.Context(), application.RegisterUserCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		count(false, metricRegisterOK, metricRegisterFail)
		respondError(c, h.Logger, err)
		return
	}

	count(true, metricRegisterOK, metricRegisterFail)
	response.Success(c, http.StatusOK, registerResponse{ID: res.ID, Email: res.Email})
}

// HandleLogin POST /api/auth/login
// The refresh token is only delivered as a cookie.
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		count(false, metricLoginOK, metricLoginFail)
		respondBindError(c, h.Logger, validation.ToDetails(err))
		return
	}

	res, err := h.Login.Login(c.Request.Context(), application.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		count(false, metricLoginOK, metricLoginFail)
		respondError(c, h.Logger, err)
		return
	}

	if h.Cookies != nil {
		h.Cookies.SetPair(c, res.AccessToken, res.AccessTokenExpiresAt, res.RefreshToken, res.RefreshTokenExpiresAt)
	}
	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{
			"user_id":    res.ID,
			"request_id": c.GetString("request_id"),
		}).Info("login successful")
	}

	count(true, metricLoginOK, metricLoginFail)
	response.Success(c, http.StatusOK, loginResponse{
		ID:          res.ID,
		Email:       res.Email,
		Role:        res.Role,
		AccessToken: res.AccessToken,
	})
}
