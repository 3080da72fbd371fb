package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

var (
	// ErrNotFound is returned by finders when no row matches.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned by Save when the email uniqueness
	// constraint rejects the write.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the persistence port for the User aggregate.
type UserRepository interface {
	FindByID(ctx context.Context, id vo.UserID) (*entity.User, error)
	FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error)
	// Save inserts the user or fully updates the row with the same public id.
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
}

// Transactor runs fn inside a single storage transaction. Repositories
// called with the ctx handed to fn take part in that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
