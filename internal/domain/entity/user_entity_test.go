package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

func mustEmail(t *testing.T, raw string) vo.Email {
	t.Helper()
	e, err := vo.NewEmail(raw)
	require.NoError(t, err)
	return e
}

func TestRegisterUser_Defaults(t *testing.T) {
	u, err := RegisterUser(mustEmail(t, "a@b.com"), "hash", "  Alice  ")
	require.NoError(t, err)

	assert.False(t, u.ID().IsZero())
	assert.Equal(t, "a@b.com", u.Email().String())
	assert.Equal(t, "hash", u.PasswordHash())
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, StatusActive, u.Status())
	assert.Equal(t, RoleUser, u.Role())
	assert.Nil(t, u.LastLoginAt())
	assert.True(t, u.IsActive())
}

func TestRegisterUser_UniqueIDs(t *testing.T) {
	email := mustEmail(t, "a@b.com")
	first, err := RegisterUser(email, "hash", "Alice")
	require.NoError(t, err)
	second, err := RegisterUser(email, "hash", "Alice")
	require.NoError(t, err)

	assert.False(t, first.ID().Equal(second.ID()))
}

func TestRegisterUser_Invariants(t *testing.T) {
	email := mustEmail(t, "a@b.com")

	tests := []struct {
		name         string
		passwordHash string
		userName     string
	}{
		{"blank hash", "   ", "Alice"},
		{"empty hash", "", "Alice"},
		{"blank name", "hash", "  "},
		{"empty name", "hash", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := RegisterUser(email, tt.passwordHash, tt.userName)

			assert.Nil(t, u)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestReconstituteUser_KeepsStoredState(t *testing.T) {
	id, err := vo.ParseUserID("user-123")
	require.NoError(t, err)
	last := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	u, err := ReconstituteUser(id, mustEmail(t, "user@example.com"), "encoded", " Spaced ", StatusInactive, RoleAdmin, &last)
	require.NoError(t, err)

	assert.Equal(t, "user-123", u.ID().String())
	assert.Equal(t, " Spaced ", u.Name(), "reconstitute must not normalize")
	assert.Equal(t, StatusInactive, u.Status())
	assert.Equal(t, RoleAdmin, u.Role())
	require.NotNil(t, u.LastLoginAt())
	assert.True(t, last.Equal(*u.LastLoginAt()))
	assert.False(t, u.IsActive())
}

func TestReconstituteUser_RejectsZeroValues(t *testing.T) {
	_, err := ReconstituteUser(vo.UserID{}, mustEmail(t, "user@example.com"), "h", "n", StatusActive, RoleUser, nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	id := vo.GenerateUserID()
	_, err = ReconstituteUser(id, vo.Email{}, "h", "n", StatusActive, RoleUser, nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpdateLastLoginAt_OnlyChangesTimestamp(t *testing.T) {
	original, err := RegisterUser(mustEmail(t, "a@b.com"), "hash", "Alice")
	require.NoError(t, err)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	updated := original.UpdateLastLoginAt(now)

	require.NotNil(t, updated.LastLoginAt())
	assert.True(t, now.Equal(*updated.LastLoginAt()))
	assert.Nil(t, original.LastLoginAt(), "original must stay untouched")

	assert.Equal(t, original.ID(), updated.ID())
	assert.Equal(t, original.Email(), updated.Email())
	assert.Equal(t, original.PasswordHash(), updated.PasswordHash())
	assert.Equal(t, original.Name(), updated.Name())
	assert.Equal(t, original.Status(), updated.Status())
	assert.Equal(t, original.Role(), updated.Role())
}

func TestWithRole_OnlyChangesRole(t *testing.T) {
	original, err := RegisterUser(mustEmail(t, "a@b.com"), "hash", " Alice ")
	require.NoError(t, err)

	admin := original.WithRole(RoleAdmin)

	assert.Equal(t, RoleAdmin, admin.Role())
	assert.Equal(t, RoleUser, original.Role(), "original must stay untouched")

	assert.Equal(t, original.ID(), admin.ID())
	assert.Equal(t, original.Email(), admin.Email())
	assert.Equal(t, original.PasswordHash(), admin.PasswordHash())
	assert.Equal(t, "Alice", admin.Name())
	assert.Equal(t, original.Status(), admin.Status())
	assert.Nil(t, admin.LastLoginAt())
}

func TestTouchLastLogin_UsesCurrentTime(t *testing.T) {
	u, err := RegisterUser(mustEmail(t, "a@b.com"), "hash", "Alice")
	require.NoError(t, err)

	before := time.Now().UTC()
	touched := u.TouchLastLogin()
	after := time.Now().UTC()

	require.NotNil(t, touched.LastLoginAt())
	at := *touched.LastLoginAt()
	assert.False(t, at.Before(before))
	assert.False(t, at.After(after))
}

func TestLastLoginAt_ReturnsCopy(t *testing.T) {
	u, err := RegisterUser(mustEmail(t, "a@b.com"), "hash", "Alice")
	require.NoError(t, err)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	u = u.UpdateLastLoginAt(now)

	got := u.LastLoginAt()
	*got = got.Add(time.Hour)

	assert.True(t, now.Equal(*u.LastLoginAt()))
}

func TestParseUserRoleAndStatus(t *testing.T) {
	role, err := ParseUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseUserRole("root")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	status, err := ParseUserStatus(" inactive ")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, status)

	_, err = ParseUserStatus("deleted")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
