package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/go-hexagonal-auth/internal/application"
	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

const (
	minSeedPasswordLen = 8
	maxSeedPasswordLen = 72 // bytes, bcrypt's input limit
)

var errAlreadySeeded = errors.New("admin already exists")

// seedAdmin registers an account and promotes it to ADMIN, unless one with
// the same email already exists.
func seedAdmin(ctx context.Context, users repo.UserRepository, tx repo.Transactor, hasher application.PasswordHasher, rawEmail, password, name string) (*entity.User, error) {
	if len(password) < minSeedPasswordLen || len(password) > maxSeedPasswordLen {
		return nil, apperror.Newf(apperror.KindValidation, "password must be %d to %d bytes", minSeedPasswordLen, maxSeedPasswordLen)
	}
	email, err := vo.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	var saved *entity.User
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := users.FindByEmail(ctx, email)
		switch {
		case err == nil:
			return errAlreadySeeded
		case !errors.Is(err, repo.ErrNotFound):
			return fmt.Errorf("find admin: %w", err)
		}

		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u, err := entity.RegisterUser(email, hash, name)
		if err != nil {
			return err
		}
		saved, err = users.Save(ctx, u.WithRole(entity.RoleAdmin))
		return err
	})
	return saved, err
}
