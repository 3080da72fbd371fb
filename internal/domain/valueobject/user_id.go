package valueobject

import (
	"strings"

	"github.com/google/uuid"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
)

// UserID is the public, opaque identifier of a user.
type UserID struct {
	value string
}

// GenerateUserID returns a fresh random (v4) identifier.
func GenerateUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// ParseUserID rebuilds an identifier from an existing string.
func ParseUserID(raw string) (UserID, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return UserID{}, apperror.Validation("user id must not be blank")
	}
	return UserID{value: normalized}, nil
}

func (id UserID) String() string { return id.value }

func (id UserID) Equal(other UserID) bool { return id.value == other.value }

func (id UserID) IsZero() bool { return id.value == "" }
