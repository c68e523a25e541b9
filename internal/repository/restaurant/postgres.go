package restaurant

import (
	"context"
	"errors"
	"io"
	"log"

	"bitefinder/internal/domain"
	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.Restaurant, error) {
	const q = `
SELECT id::text, name, cuisine, rating, delivery_time, COALESCE(image_url, ''), address, cost_for_two, is_veg, is_active, created_at, updated_at
FROM restaurants
WHERE is_active
ORDER BY rating DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("restaurant repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(
			&rest.ID,
			&rest.Name,
			&rest.Cuisine,
			&rest.Rating,
			&rest.DeliveryTime,
			&rest.ImageURL,
			&rest.Address,
			&rest.CostForTwo,
			&rest.IsVeg,
			&rest.IsActive,
			&rest.CreatedAt,
			&rest.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rest)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("restaurant repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	const q = `
SELECT id::text, name, cuisine, rating, delivery_time, COALESCE(image_url, ''), address, cost_for_two, is_veg, is_active, created_at, updated_at
FROM restaurants
WHERE id = $1 AND is_active
`
	var rest domain.Restaurant
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&rest.ID,
		&rest.Name,
		&rest.Cuisine,
		&rest.Rating,
		&rest.DeliveryTime,
		&rest.ImageURL,
		&rest.Address,
		&rest.CostForTwo,
		&rest.IsVeg,
		&rest.IsActive,
		&rest.CreatedAt,
		&rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("restaurant repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &rest, nil
}
