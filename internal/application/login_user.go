package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

type LoginUserService struct {
	Users  repo.UserRepository
	Tx     repo.Transactor
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger *logrus.Logger

	now func() time.Time
}

func NewLoginUserService(users repo.UserRepository, tx repo.Transactor, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *LoginUserService {
	return &LoginUserService{Users: users, Tx: tx, Hasher: hasher, Tokens: tokens, Logger: logger, now: time.Now}
}

// WithClock replaces the time source used for lastLoginAt.
func (s *LoginUserService) WithClock(now func() time.Time) *LoginUserService {
	s.now = now
	return s
}

// Login checks, in order: email format, existence, password, status.
// A malformed email is reported as a validation error rather than as an
// unknown user, and an unknown user is distinguishable from a wrong
// password.
func (s *LoginUserService) Login(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	err = withinTx(ctx, s.Tx, func(ctx context.Context) error {
		u, err := s.Users.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return apperror.Newf(apperror.KindUserNotFound, "user not found: %s", email)
			}
			return apperror.Wrap(apperror.KindUnexpected, "find user by email", err)
		}
		if !s.Hasher.Matches(cmd.Password, u.PasswordHash()) {
			return apperror.New(apperror.KindInvalidCredentials, "invalid password")
		}
		if !u.IsActive() {
			return apperror.New(apperror.KindInactiveAccount, "account is inactive")
		}

		user, err = s.Users.Save(ctx, u.UpdateLastLoginAt(s.now().UTC()))
		if err != nil {
			return apperror.Wrap(apperror.KindUnexpected, "save last login", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	id, role := user.ID().String(), user.Role().String()
	access, accessExp, err := s.Tokens.GenerateAccessToken(id, role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id).Error("generate access token failed")
		}
		return nil, apperror.Wrap(apperror.KindUnexpected, "generate access token", err)
	}
	refresh, refreshExp, err := s.Tokens.GenerateRefreshToken(id, role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id).Error("generate refresh token failed")
		}
		return nil, apperror.Wrap(apperror.KindUnexpected, "generate refresh token", err)
	}

	return &LoginUserResult{
		ID:                    id,
		Email:                 user.Email().String(),
		Role:                  role,
		AccessToken:           access,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refresh,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
