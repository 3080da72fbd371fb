package application

import (
	"context"
	"time"
)

// PasswordHasher turns raw passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Matches never fails; a malformed hash is simply a mismatch.
	Matches(plain, hash string) bool
}

// TokenIssuer signs access and refresh tokens for an authenticated user.
type TokenIssuer interface {
	GenerateAccessToken(subjectID, role string) (string, time.Time, error)
	GenerateRefreshToken(subjectID, role string) (string, time.Time, error)
}

// ProfileCache is a read-through cache in front of the user store.
// Get returns (nil, nil) on a miss. Implementations must never be the
// reason a request fails; callers log and ignore their errors.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*UserProfileResult, error)
	Set(ctx context.Context, profile *UserProfileResult) error
}
