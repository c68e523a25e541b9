package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	addrJSON, err := json.Marshal(o.DeliveryAddress)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO orders (id, owner_id, items, delivery_address, payment_method, subtotal, delivery_fee, tax, total, status, estimated_delivery, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	_, err = r.pool.Exec(ctx, q,
		o.ID,
		o.OwnerID,
		itemsJSON,
		addrJSON,
		o.PaymentMethod,
		o.Totals.Subtotal,
		o.Totals.DeliveryFee,
		o.Totals.Tax,
		o.Totals.Total,
		o.Status,
		o.EstimatedDelivery,
		o.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		r.logger.Printf("order repo: create id=%s error=%v", o.ID, err)
		return err
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Order, error) {
	const q = `
SELECT id, owner_id, items, delivery_address, payment_method, subtotal, delivery_fee, tax, total, status, estimated_delivery, created_at
FROM orders
WHERE owner_id = $1 AND id = $2
LIMIT 1
`
	return r.scanOrder(r.pool.QueryRow(ctx, q, ownerID, id))
}

func (r *postgresRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Order, error) {
	const q = `
SELECT id, owner_id, items, delivery_address, payment_method, subtotal, delivery_fee, tax, total, status, estimated_delivery, created_at
FROM orders
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, ownerID, limit)
	if err != nil {
		r.logger.Printf("order repo: list owner=%s error=%v", ownerID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var itemsJSON, addrJSON []byte
	err := row.Scan(
		&o.ID,
		&o.OwnerID,
		&itemsJSON,
		&addrJSON,
		&o.PaymentMethod,
		&o.Totals.Subtotal,
		&o.Totals.DeliveryFee,
		&o.Totals.Tax,
		&o.Totals.Total,
		&o.Status,
		&o.EstimatedDelivery,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: scan error=%v", err)
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			r.logger.Printf("order repo: decode items id=%s err=%v", o.ID, err)
			return nil, err
		}
	}
	if len(addrJSON) > 0 {
		if err := json.Unmarshal(addrJSON, &o.DeliveryAddress); err != nil {
			r.logger.Printf("order repo: decode address id=%s err=%v", o.ID, err)
			return nil, err
		}
	}
	return &o, nil
}
