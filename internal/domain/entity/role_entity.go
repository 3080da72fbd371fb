package entity

import (
	"strings"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
)

// UserRole represents an authorization role carried in the token role claim.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

// ParseUserRole maps a stored or claimed role name back to a UserRole.
func ParseUserRole(raw string) (UserRole, error) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", apperror.Newf(apperror.KindValidation, "unknown user role: %q", raw)
}

// UserStatus is the account lifecycle state. Only ACTIVE users may log in.
type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
)

func (s UserStatus) String() string { return string(s) }

func ParseUserStatus(raw string) (UserStatus, error) {
	switch UserStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	}
	return "", apperror.Newf(apperror.KindValidation, "unknown user status: %q", raw)
}
