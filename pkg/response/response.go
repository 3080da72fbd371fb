package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const ProblemContentType = "application/problem+json"

// APIResponse is the success envelope.
type APIResponse[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Problem is the error body, shaped after RFC 7807 with a few extras.
type Problem struct {
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail"`
	Timestamp time.Time         `json:"timestamp"`
	Exception string            `json:"exception"`
	Path      string            `json:"path"`
	RequestID string            `json:"request_id,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// StatusBody is the fixed-shape body used by the auth gate.
type StatusBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success writes data wrapped in the envelope.
func Success[T any](ctx *gin.Context, status int, data T) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString("request_id"),
	}
	ctx.JSON(status, resp)
	return resp
}

// Error writes a problem detail and aborts the handler chain.
func Error(ctx *gin.Context, status int, exception, detail string, errs map[string]string) Problem {
	if status == 0 {
		status = http.StatusBadRequest
	}
	p := Problem{
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
		Exception: exception,
		Path:      ctx.Request.URL.Path,
		RequestID: ctx.GetString("request_id"),
		Errors:    errs,
	}
	ctx.Header("Content-Type", ProblemContentType)
	ctx.AbortWithStatusJSON(status, p)
	return p
}

func Unauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, StatusBody{Code: http.StatusUnauthorized, Message: "UNAUTHORIZED"})
}

func Forbidden(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusForbidden, StatusBody{Code: http.StatusForbidden, Message: "FORBIDDEN"})
}
