package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

type RegisterUserService struct {
	Users  repo.UserRepository
	Tx     repo.Transactor
	Hasher PasswordHasher
	Logger *logrus.Logger
}

func NewRegisterUserService(users repo.UserRepository, tx repo.Transactor, hasher PasswordHasher, logger *logrus.Logger) *RegisterUserService {
	return &RegisterUserService{Users: users, Tx: tx, Hasher: hasher, Logger: logger}
}

// Register creates a new ACTIVE account with role USER. The duplicate
// check and the insert share one transaction; a concurrent insert that
// slips past the check is still rejected by the store's unique index.
func (s *RegisterUserService) Register(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	if len(cmd.Password) > maxPasswordBytes {
		return nil, apperror.Newf(apperror.KindValidation, "password must be at most %d bytes", maxPasswordBytes)
	}

	var saved *entity.User
	err = withinTx(ctx, s.Tx, func(ctx context.Context) error {
		_, err := s.Users.FindByEmail(ctx, email)
		switch {
		case err == nil:
			return apperror.Newf(apperror.KindDuplicateEmail, "email already registered: %s", email)
		case !errors.Is(err, repo.ErrNotFound):
			return apperror.Wrap(apperror.KindUnexpected, "find user by email", err)
		}

		hash, err := s.Hasher.Hash(cmd.Password)
		if err != nil {
			return apperror.Wrap(apperror.KindUnexpected, "hash password", err)
		}

		u, err := entity.RegisterUser(email, hash, cmd.Name)
		if err != nil {
			return err
		}

		saved, err = s.Users.Save(ctx, u)
		if err != nil {
			if errors.Is(err, repo.ErrDuplicateEmail) {
				return apperror.Newf(apperror.KindDuplicateEmail, "email already registered: %s", email)
			}
			return apperror.Wrap(apperror.KindUnexpected, "save user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", saved.ID().String()).Info("user registered")
	}
	return &RegisterUserResult{ID: saved.ID().String(), Email: saved.Email().String()}, nil
}
