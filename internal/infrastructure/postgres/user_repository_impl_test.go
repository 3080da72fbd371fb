package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	"github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
)

func TestTranslateError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	err := translateError(dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.Contains(t, err.Error(), "users_email_key")

	other := &pgconn.PgError{Code: "23502"}
	assert.Same(t, other, translateError(other))

	plain := errors.New("conn reset")
	assert.Equal(t, plain, translateError(plain))
}

func TestUserRow_ToEntity(t *testing.T) {
	login := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	ur := userRow{
		PublicID:     "0d8d5b0e-8b2b-4a84-9c55-1f0b8c9d6b11",
		Email:        "a@b.com",
		PasswordHash: "$2a$10$hash",
		Name:         "Name",
		Status:       "INACTIVE",
		Role:         "ADMIN",
		LastLoginAt:  &login,
	}

	u, err := ur.toEntity()
	require.NoError(t, err)
	assert.Equal(t, ur.PublicID, u.ID().String())
	assert.Equal(t, "a@b.com", u.Email().String())
	assert.Equal(t, entity.StatusInactive, u.Status())
	assert.Equal(t, entity.RoleAdmin, u.Role())
	require.NotNil(t, u.LastLoginAt())
	assert.True(t, login.Equal(*u.LastLoginAt()))
}

func TestUserRow_ToEntityRejectsCorruptRows(t *testing.T) {
	base := userRow{PublicID: "id-1", Email: "a@b.com", PasswordHash: "h", Name: "n", Status: "ACTIVE", Role: "USER"}

	tests := []struct {
		name   string
		mutate func(*userRow)
	}{
		{"blank id", func(r *userRow) { r.PublicID = " " }},
		{"bad email", func(r *userRow) { r.Email = "nope" }},
		{"bad status", func(r *userRow) { r.Status = "BANNED" }},
		{"bad role", func(r *userRow) { r.Role = "ROOT" }},
		{"blank hash", func(r *userRow) { r.PasswordHash = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.mutate(&r)
			_, err := r.toEntity()
			assert.Error(t, err)
		})
	}
}
