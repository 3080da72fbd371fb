package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

type GetProfileService struct {
	Users  repo.UserRepository
	Cache  ProfileCache
	Logger *logrus.Logger
}

// NewGetProfileService wires the read side. cache may be nil.
func NewGetProfileService(users repo.UserRepository, cache ProfileCache, logger *logrus.Logger) *GetProfileService {
	return &GetProfileService{Users: users, Cache: cache, Logger: logger}
}

func (s *GetProfileService) GetProfile(ctx context.Context, userPublicID string) (*UserProfileResult, error) {
	id, err := vo.ParseUserID(userPublicID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		cached, cErr := s.Cache.Get(ctx, id.String())
		if cErr != nil && s.Logger != nil {
			s.Logger.WithError(cErr).WithField("user_id", id.String()).Warn("profile cache get failed")
		}
		if cached != nil {
			return cached, nil
		}
	}

	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.Newf(apperror.KindUserNotFound, "user not found: %s", id)
		}
		return nil, apperror.Wrap(apperror.KindUnexpected, "find user by id", err)
	}

	profile := &UserProfileResult{
		UserID: u.ID().String(),
		Email:  u.Email().String(),
		Name:   u.Name(),
		Role:   u.Role().String(),
	}

	if s.Cache != nil {
		if cErr := s.Cache.Set(ctx, profile); cErr != nil && s.Logger != nil {
			s.Logger.WithError(cErr).WithField("user_id", id.String()).Warn("profile cache set failed")
		}
	}
	return profile, nil
}
