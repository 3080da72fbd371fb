package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-hexagonal-auth/pkg/response"
)

// RequireAuthenticated aborts with 401 unless Authenticate established an
// identity.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserIDKey) == "" {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 401 for anonymous callers and 403 when the
// caller's role is not in roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if c.GetString(CtxUserIDKey) == "" {
			response.Unauthorized(c)
			return
		}
		if _, ok := allowed[c.GetString(CtxUserRoleKey)]; !ok {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
