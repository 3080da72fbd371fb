package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-hexagonal-auth/config"
	"github.com/oksasatya/go-hexagonal-auth/internal/container"
	"github.com/oksasatya/go-hexagonal-auth/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", getenv("SEED_ADMIN_EMAIL", "admin@example.com"), "admin email")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password (min 8 chars)")
	name := flag.String("name", getenv("SEED_ADMIN_NAME", "Administrator"), "admin display name")
	flag.Parse()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	c, err := container.Build(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize dependencies")
	}
	defer c.Close()

	res, err := seedAdmin(ctx, c.Users, c.Tx, c.Hasher, *email, *password, *name)
	if err != nil {
		if errors.Is(err, errAlreadySeeded) {
			logger.WithField("email", *email).Info("admin already exists, nothing to do")
			return
		}
		logger.WithError(err).Fatal("failed to seed admin")
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", res.ID().String(), res.Email().String())
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
