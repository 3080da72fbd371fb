package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/entity"
	"github.com/oksasatya/go-hexagonal-auth/internal/domain/repository"
	vo "github.com/oksasatya/go-hexagonal-auth/internal/domain/valueobject"
)

const uniqueViolation = "23505"

const userColumns = `public_id, email, password_hash, name, status, role, last_login_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// userRow mirrors one row of the users table.
type userRow struct {
	PublicID     string
	Email        string
	PasswordHash string
	Name         string
	Status       string
	Role         string
	LastLoginAt  *time.Time
}

func (r *UserRepository) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE public_id = $1
	`, id.String())
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email.String())
	return scanUser(row)
}

// Save upserts on public_id. A clash on the email index surfaces as
// repository.ErrDuplicateEmail.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (public_id) DO UPDATE SET
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			role = EXCLUDED.role,
			last_login_at = EXCLUDED.last_login_at,
			updated_at = NOW()
		RETURNING `+userColumns+`
	`, u.ID().String(), u.Email().String(), u.PasswordHash(), u.Name(),
		u.Status().String(), u.Role().String(), u.LastLoginAt())

	saved, err := scanUser(row)
	if err != nil {
		return nil, translateError(err)
	}
	return saved, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var ur userRow
	if err := row.Scan(&ur.PublicID, &ur.Email, &ur.PasswordHash, &ur.Name,
		&ur.Status, &ur.Role, &ur.LastLoginAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ur.toEntity()
}

func (ur userRow) toEntity() (*entity.User, error) {
	id, err := vo.ParseUserID(ur.PublicID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row: %w", err)
	}
	email, err := vo.NewEmail(ur.Email)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", ur.PublicID, err)
	}
	status, err := entity.ParseUserStatus(ur.Status)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", ur.PublicID, err)
	}
	role, err := entity.ParseUserRole(ur.Role)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", ur.PublicID, err)
	}
	return entity.ReconstituteUser(id, email, ur.PasswordHash, ur.Name, status, role, ur.LastLoginAt)
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateEmail, pgErr.ConstraintName)
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
