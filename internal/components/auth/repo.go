package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

type (
	repoer interface {
		Create(ctx context.Context, user *User) error
		GetByUsername(ctx context.Context, username string) (*User, error)
		GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

// Create persists a new credential. Username uniqueness is enforced by the
// database; a violation is surfaced as ErrUsernameTaken.
func (r *repo) Create(ctx context.Context, user *User) error {
	stmt := `
	INSERT INTO users (id, username, password_hash)
	VALUES ($1, $2, $3)
	RETURNING created_at`

	err := r.pool.QueryRow(
		ctx,
		stmt,
		user.ID,
		user.Username,
		user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	stmt := `
	SELECT id, username, password_hash, created_at
	FROM users
	WHERE username = $1`

	var user User
	err := r.pool.QueryRow(ctx, stmt, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	stmt := `
	SELECT id, username, password_hash, created_at
	FROM users
	WHERE id = $1`

	var user User
	err := r.pool.QueryRow(ctx, stmt, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
