package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/config"
	"github.com/oksasatya/go-hexagonal-auth/internal/application"
	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	"github.com/oksasatya/go-hexagonal-auth/internal/infrastructure/cache"
	"github.com/oksasatya/go-hexagonal-auth/internal/infrastructure/gormstore"
	"github.com/oksasatya/go-hexagonal-auth/internal/infrastructure/health"
	pginfra "github.com/oksasatya/go-hexagonal-auth/internal/infrastructure/postgres"
	"github.com/oksasatya/go-hexagonal-auth/internal/router"
	"github.com/oksasatya/go-hexagonal-auth/pkg/helpers"
)

// Container owns the infrastructure singletons of one process. It is
// built once in main and handed down explicitly.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Users  repo.UserRepository
	Tx     repo.Transactor
	Hasher *helpers.BcryptHasher
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Cache  application.ProfileCache
	Health *health.Service

	closers []func()
}

// Build opens the configured store, runs migrations when enabled and
// connects redis if it answers. A dead redis disables the profile cache
// rather than failing startup.
func Build(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Hasher: helpers.NewBcryptHasher(cfg.BcryptCost),
		JWT:    helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL),
	}

	var checkers []health.Checker
	switch cfg.StoreDriver {
	case config.StoreDriverGorm:
		db, err := gormstore.Open(cfg.GormDialect, cfg.GormDSN())
		if err != nil {
			return nil, fmt.Errorf("open gorm: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			c.closers = append(c.closers, func() { _ = sqlDB.Close() })
		}
		if cfg.RunMigrations {
			logger.WithField("dialect", cfg.GormDialect).Info("running gorm auto-migrate")
			if err := gormstore.AutoMigrate(db); err != nil {
				c.Close()
				return nil, fmt.Errorf("auto-migrate: %w", err)
			}
		}
		c.Users = gormstore.NewUserRepository(db)
		c.Tx = gormstore.NewTxManager(db)
		checkers = append(checkers, health.NewGormChecker(db))
	case config.StoreDriverPgx:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.closers = append(c.closers, pool.Close)
		if cfg.RunMigrations {
			if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
				c.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		c.Users = pginfra.NewUserRepository(pool)
		c.Tx = pginfra.NewTxManager(pool)
		checkers = append(checkers, health.NewPostgresChecker(pool))
	default:
		return nil, errors.New("unsupported store driver " + cfg.StoreDriver)
	}

	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, profile cache disabled")
			_ = rdb.Close()
		} else {
			c.Redis = rdb
			c.Cache = cache.NewProfileCache(rdb, cfg.ProfileCacheTTL)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
			checkers = append(checkers, health.NewRedisChecker(rdb))
		}
	}

	c.Health = health.NewService(checkers...)
	return c, nil
}

// RouterDeps adapts the container to what the HTTP layer needs.
func (c *Container) RouterDeps() router.Deps {
	return router.Deps{
		Config: c.Config,
		Logger: c.Logger,
		Users:  c.Users,
		Tx:     c.Tx,
		Hasher: c.Hasher,
		JWT:    c.JWT,
		Cache:  c.Cache,
		Health: c.Health,
	}
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
