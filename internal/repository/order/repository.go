package order

import (
	"context"

	"bitefinder/internal/domain"
)

// Repository persists placed orders. Orders are append-only; nothing
// updates a row after creation.
type Repository interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Order, error)
	ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Order, error)
}
