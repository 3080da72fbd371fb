package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// TokenVerifier is the read side of helpers.JWTManager.
type TokenVerifier interface {
	Validate(token string) bool
	IsExpired(token string) bool
	IsAccessToken(token string) bool
	ExtractSubjectID(token string) (string, error)
	ExtractRole(token string) (string, error)
}

// Authenticate reads "Authorization: Bearer <token>" and, when it holds a
// live access token, stores the caller's id and role in the context.
// It never rejects a request; RequireAuthenticated and RequireRole do.
func Authenticate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}
		if !tokens.Validate(token) || tokens.IsExpired(token) || !tokens.IsAccessToken(token) {
			c.Next()
			return
		}
		sub, err := tokens.ExtractSubjectID(token)
		if err != nil || sub == "" {
			c.Next()
			return
		}
		role, err := tokens.ExtractRole(token)
		if err != nil {
			c.Next()
			return
		}
		c.Set(CtxUserIDKey, sub)
		c.Set(CtxUserRoleKey, role)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
