package application

import (
	"context"
	"strings"
	"time"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

// mockUserRepository is a func-field implementation of repo.UserRepository.
// Unset funcs behave like an empty store.
type mockUserRepository struct {
	FindByIDFunc    func(ctx context.Context, id vo.UserID) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email vo.Email) (*entity.User, error)
	SaveFunc        func(ctx context.Context, u *entity.User) (*entity.User, error)

	saved []*entity.User
}

func (m *mockUserRepository) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	m.saved = append(m.saved, u)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u, nil
}

// memoryUserRepository keeps users in a map keyed by public id and
// enforces email uniqueness the way a real store would.
type memoryUserRepository struct {
	byID map[string]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byID: map[string]*entity.User{}}
}

func (m *memoryUserRepository) FindByID(_ context.Context, id vo.UserID) (*entity.User, error) {
	if u, ok := m.byID[id.String()]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email vo.Email) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email().Equal(email) {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memoryUserRepository) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	for id, existing := range m.byID {
		if id != u.ID().String() && existing.Email().Equal(u.Email()) {
			return nil, repo.ErrDuplicateEmail
		}
	}
	m.byID[u.ID().String()] = u
	return u, nil
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// fakeHasher "hashes" by prefixing, which keeps tests fast and readable.
type fakeHasher struct {
	HashFunc func(plain string) (string, error)
}

func (f *fakeHasher) Hash(plain string) (string, error) {
	if f.HashFunc != nil {
		return f.HashFunc(plain)
	}
	return "hashed:" + plain, nil
}

func (f *fakeHasher) Matches(plain, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == plain && strings.HasPrefix(hash, "hashed:")
}

type mockTokenIssuer struct {
	GenerateAccessTokenFunc  func(subjectID, role string) (string, time.Time, error)
	GenerateRefreshTokenFunc func(subjectID, role string) (string, time.Time, error)
}

func (m *mockTokenIssuer) GenerateAccessToken(subjectID, role string) (string, time.Time, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(subjectID, role)
	}
	return "access:" + subjectID + ":" + role, time.Now().Add(time.Minute), nil
}

func (m *mockTokenIssuer) GenerateRefreshToken(subjectID, role string) (string, time.Time, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(subjectID, role)
	}
	return "refresh:" + subjectID + ":" + role, time.Now().Add(time.Hour), nil
}

type mockProfileCache struct {
	GetFunc func(ctx context.Context, userID string) (*UserProfileResult, error)
	SetFunc func(ctx context.Context, p *UserProfileResult) error

	sets []*UserProfileResult
}

func (m *mockProfileCache) Get(ctx context.Context, userID string) (*UserProfileResult, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileCache) Set(ctx context.Context, p *UserProfileResult) error {
	m.sets = append(m.sets, p)
	if m.SetFunc != nil {
		return m.SetFunc(ctx, p)
	}
	return nil
}

func mustEmail(raw string) vo.Email {
	e, err := vo.NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func mustUser(email, hash, name string, status entity.UserStatus, role entity.UserRole) *entity.User {
	u, err := entity.ReconstituteUser(vo.GenerateUserID(), mustEmail(email), hash, name, status, role, nil)
	if err != nil {
		panic(err)
	}
	return u
}
