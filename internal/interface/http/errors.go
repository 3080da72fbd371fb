package handlers

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
	"github.com/oksasatya/go-hexagonal-auth/internal/interface/middleware"
	"github.com/oksasatya/go-hexagonal-auth/pkg/response"
)

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindInvalidCredentials:
		return http.StatusBadRequest
	case apperror.KindDuplicateEmail:
		return http.StatusConflict
	case apperror.KindUserNotFound:
		return http.StatusNotFound
	case apperror.KindInactiveAccount:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps err to a problem detail. Client errors are logged at
// warn level; server errors at error level with the goroutine stack.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	kind := apperror.KindOf(err)
	status := statusFor(kind)

	detail := "unexpected error"
	var ae *apperror.Error
	if kind != apperror.KindUnexpected && errors.As(err, &ae) && ae.Message != "" {
		detail = ae.Message
	}

	if logger != nil {
		entry := logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         middleware.ClientIP(c),
			"status":     status,
			"kind":       kind.String(),
		}).WithError(err)
		if status >= http.StatusInternalServerError {
			entry.WithField("stack", string(debug.Stack())).Error("request failed")
		} else {
			entry.Warn("request rejected")
		}
	}

	response.Error(c, status, kind.String(), detail, nil)
}

// respondBindError reports a malformed or invalid request body.
func respondBindError(c *gin.Context, logger *logrus.Logger, details map[string]string) {
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
			"errors":     details,
		}).Warn("invalid payload")
	}
	response.Error(c, http.StatusBadRequest, apperror.KindValidation.String(), "invalid payload", details)
}
