package gormstore

import (
	"fmt"
	"time"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

// UserModel is the gorm mapping of the users table.
type UserModel struct {
	ID           uint       `gorm:"primaryKey"`
	PublicID     string     `gorm:"size:36;uniqueIndex;not null"`
	Email        string     `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string     `gorm:"size:255;not null"`
	Name         string     `gorm:"size:100;not null"`
	Status       string     `gorm:"size:20;not null;default:ACTIVE"`
	Role         string     `gorm:"size:20;not null;default:USER"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }

func fromEntity(u *entity.User) *UserModel {
	return &UserModel{
		PublicID:     u.ID().String(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name(),
		Status:       u.Status().String(),
		Role:         u.Role().String(),
		LastLoginAt:  u.LastLoginAt(),
	}
}

func (m *UserModel) toEntity() (*entity.User, error) {
	id, err := vo.ParseUserID(m.PublicID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row: %w", err)
	}
	email, err := vo.NewEmail(m.Email)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", m.PublicID, err)
	}
	status, err := entity.ParseUserStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", m.PublicID, err)
	}
	role, err := entity.ParseUserRole(m.Role)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", m.PublicID, err)
	}
	return entity.ReconstituteUser(id, email, m.PasswordHash, m.Name, status, role, m.LastLoginAt)
}
