package helpers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieConfig mirrors the COOKIE_* settings.
type CookieConfig struct {
	AccessName  string
	RefreshName string
	Domain      string
	Path        string
	HTTPOnly    bool
	Secure      bool
	SameSite    http.SameSite
}

type Manager struct {
	cfg CookieConfig
}

func NewCookie(cfg CookieConfig) *Manager {
	if cfg.AccessName == "" {
		cfg.AccessName = "access_token"
	}
	if cfg.RefreshName == "" {
		cfg.RefreshName = "refresh_token"
	}
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	if cfg.SameSite == 0 {
		cfg.SameSite = http.SameSiteLaxMode
	}
	return &Manager{cfg: cfg}
}

// SetPair writes the access and refresh cookies; each max-age follows the
// token's own expiry.
func (m *Manager) SetPair(c *gin.Context, access string, aexp time.Time, refresh string, rexp time.Time) {
	c.SetSameSite(m.cfg.SameSite)
	c.SetCookie(m.cfg.AccessName, access, maxAgeFrom(aexp), m.cfg.Path, m.cfg.Domain, m.cfg.Secure, m.cfg.HTTPOnly)
	c.SetCookie(m.cfg.RefreshName, refresh, maxAgeFrom(rexp), m.cfg.Path, m.cfg.Domain, m.cfg.Secure, m.cfg.HTTPOnly)
}

// ParseSameSite accepts lax, strict or none; anything else is lax.
func ParseSameSite(raw string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
