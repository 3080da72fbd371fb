package application

import (
	"context"

	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
)

// withinTx runs fn inside tx when a transactor is wired, or directly
// otherwise.
func withinTx(ctx context.Context, tx repo.Transactor, fn func(ctx context.Context) error) error {
	if tx == nil {
		return fn(ctx)
	}
	return tx.WithinTransaction(ctx, fn)
}
