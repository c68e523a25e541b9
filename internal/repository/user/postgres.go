package user

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"bitefinder/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (email, name, phone, address, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, email, name, COALESCE(phone, ''), COALESCE(address, ''), password_hash, created_at
`
	return r.scanUser(r.pool.QueryRow(ctx, q,
		strings.ToLower(u.Email),
		u.Name,
		nullable(u.Phone),
		nullable(u.Address),
		u.PasswordHash,
	))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, email, name, COALESCE(phone, ''), COALESCE(address, ''), password_hash, created_at
FROM users
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scanUser(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id::text, email, name, COALESCE(phone, ''), COALESCE(address, ''), password_hash, created_at
FROM users
WHERE id = $1
LIMIT 1
`
	return r.scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error) {
	const q = `
UPDATE users
SET name    = COALESCE($2, name),
    phone   = COALESCE($3, phone),
    address = COALESCE($4, address)
WHERE id = $1
RETURNING id::text, email, name, COALESCE(phone, ''), COALESCE(address, ''), password_hash, created_at
`
	return r.scanUser(r.pool.QueryRow(ctx, q, id, patch.Name, patch.Phone, patch.Address))
}

func (r *postgresRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Phone,
		&u.Address,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: scan error=%v", err)
		return nil, err
	}
	return &u, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
