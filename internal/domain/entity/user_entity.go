package entity

import (
	"strings"
	"time"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

// User is the aggregate root for the user domain.
// Fields are unexported; a User is only obtained through RegisterUser or
// ReconstituteUser and is never mutated in place.
type User struct {
	id           vo.UserID
	email        vo.Email
	passwordHash string
	name         string
	status       UserStatus
	role         UserRole
	lastLoginAt  *time.Time
}

// RegisterUser creates a brand-new account. passwordHash must already be
// hashed; the aggregate never sees a raw password.
func RegisterUser(email vo.Email, passwordHash, name string) (*User, error) {
	return newUser(vo.GenerateUserID(), email, passwordHash, strings.TrimSpace(name), StatusActive, RoleUser, nil)
}

// ReconstituteUser rebuilds an aggregate from persisted state.
func ReconstituteUser(id vo.UserID, email vo.Email, passwordHash, name string, status UserStatus, role UserRole, lastLoginAt *time.Time) (*User, error) {
	return newUser(id, email, passwordHash, name, status, role, lastLoginAt)
}

func newUser(id vo.UserID, email vo.Email, passwordHash, name string, status UserStatus, role UserRole, lastLoginAt *time.Time) (*User, error) {
	if id.IsZero() {
		return nil, apperror.Validation("user id must not be blank")
	}
	if email.IsZero() {
		return nil, apperror.Validation("email must not be blank")
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, apperror.Validation("password hash must not be blank")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperror.Validation("name must not be blank")
	}
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		status:       status,
		role:         role,
		lastLoginAt:  copyTime(lastLoginAt),
	}, nil
}

// UpdateLastLoginAt returns a copy of u with lastLoginAt set to now.
func (u *User) UpdateLastLoginAt(now time.Time) *User {
	next := *u
	next.lastLoginAt = &now
	return &next
}

// WithRole returns a copy of u holding role.
func (u *User) WithRole(role UserRole) *User {
	next := *u
	next.role = role
	next.lastLoginAt = copyTime(u.lastLoginAt)
	return &next
}

// TouchLastLogin is UpdateLastLoginAt with the current time.
func (u *User) TouchLastLogin() *User {
	return u.UpdateLastLoginAt(time.Now().UTC())
}

func (u *User) ID() vo.UserID        { return u.id }
func (u *User) Email() vo.Email      { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() string         { return u.name }
func (u *User) Status() UserStatus   { return u.status }
func (u *User) Role() UserRole       { return u.role }
func (u *User) IsActive() bool       { return u.status == StatusActive }

// LastLoginAt is nil until the first successful login.
func (u *User) LastLoginAt() *time.Time { return copyTime(u.lastLoginAt) }

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
