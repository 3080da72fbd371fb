package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	"github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	return r.findOne(ctx, "public_id = ?", id.String())
}

func (r *UserRepository) FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email.String())
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	var m UserModel
	if err := conn(ctx, r.db).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m.toEntity()
}

// Save upserts on public_id. A clash on the email index surfaces as
// repository.ErrDuplicateEmail.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	m := fromEntity(u)
	err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "public_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "password_hash", "name", "status", "role", "last_login_at", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %v", repository.ErrDuplicateEmail, err)
		}
		return nil, err
	}
	return m.toEntity()
}

var _ repository.UserRepository = (*UserRepository)(nil)
