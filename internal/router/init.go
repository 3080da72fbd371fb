package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/config"
	"github.com/oksasatya/go-hexagonal-auth/internal/application"
	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	handlers "github.com/oksasatya/go-hexagonal-auth/internal/interface/http"
	"github.com/oksasatya/go-hexagonal-auth/internal/interface/middleware"
	"github.com/oksasatya/go-hexagonal-auth/internal/router/modules"
	"github.com/oksasatya/go-hexagonal-auth/pkg/helpers"
	"github.com/oksasatya/go-hexagonal-auth/pkg/validation"
)

// Deps are the infrastructure singletons built by cmd/main.
type Deps struct {
	Config *config.Config
	Logger *logrus.Logger
	Users  repo.UserRepository
	Tx     repo.Transactor
	Hasher application.PasswordHasher
	JWT    *helpers.JWTManager
	// Cache is optional.
	Cache  application.ProfileCache
	Health handlers.ReadinessChecker
}

// NewEngine builds the gin engine with global middleware and every module.
func NewEngine(d Deps) *gin.Engine {
	validation.Init()

	r := gin.New()
	if err := r.SetTrustedProxies(d.Config.TrustedProxies()); err != nil {
		if d.Logger != nil {
			d.Logger.WithError(err).Warn("invalid trusted proxies, forwarded headers ignored")
		}
		_ = r.SetTrustedProxies(nil)
	}
	if d.Config.BehindCloudflare {
		r.TrustedPlatform = gin.PlatformCloudflare
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if d.Config.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r)
	reg.Use(middleware.Authenticate(d.JWT))
	InitModules(reg, d)
	reg.RegisterAll()
	return r
}

// InitModules constructs use cases and handlers explicitly and registers
// their modules.
func InitModules(r *Registry, d Deps) {
	register := application.NewRegisterUserService(d.Users, d.Tx, d.Hasher, d.Logger)
	login := application.NewLoginUserService(d.Users, d.Tx, d.Hasher, d.JWT, d.Logger)
	profile := application.NewGetProfileService(d.Users, d.Cache, d.Logger)

	cookies := helpers.NewCookie(helpers.CookieConfig{
		AccessName:  d.Config.CookieAccessName,
		RefreshName: d.Config.CookieRefreshName,
		Domain:      d.Config.CookieDomain,
		Path:        d.Config.CookiePath,
		HTTPOnly:    d.Config.CookieHTTPOnly,
		Secure:      d.Config.CookieSecure,
		SameSite:    helpers.ParseSameSite(d.Config.CookieSameSite),
	})

	r.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(d.Health, d.Logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(register, login, d.Logger, cookies)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(profile, d.Logger)))
	if d.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
