package middleware

import (
	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// RealIP records the caller address once per request, as resolved by gin.
// Forwarded headers count only when the engine trusts the peer (see
// Engine.SetTrustedProxies) and CF-Connecting-IP only when TrustedPlatform
// is set to Cloudflare; otherwise the socket peer is used.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, c.ClientIP())
		c.Next()
	}
}

// ClientIP returns the address stored by RealIP, or gin's guess when the
// middleware is not installed.
func ClientIP(c *gin.Context) string {
	if ip := c.GetString(CtxRealIPKey); ip != "" {
		return ip
	}
	return c.ClientIP()
}
