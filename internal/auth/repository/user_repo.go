package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/protrack-dev/protrack-backend/internal/auth/domain"
)

// UserRepository provides persistence operations for user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The email unique constraint is surfaced as
// domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash, name string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email required")
	}

	const q = `
insert into users (email, password_hash, name)
values ($1, $2, $3)
returning id::text, email, password_hash, name, is_active, is_staff, created_at;
`
	var u domain.User
	err := r.db.QueryRow(ctx, q, email, passwordHash, name).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		// unique violation on email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by login identifier.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
select id::text, email, password_hash, name, is_active, is_staff, created_at
from users
where email = $1;
`
	return r.scanOne(r.db.QueryRow(ctx, q, email))
}

// GetByID looks up a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
select id::text, email, password_hash, name, is_active, is_staff, created_at
from users
where id = $1::uuid;
`
	return r.scanOne(r.db.QueryRow(ctx, q, id))
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
