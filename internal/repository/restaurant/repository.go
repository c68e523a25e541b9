package restaurant

import (
	"context"

	"bitefinder/internal/domain"
)

// Repository reads the restaurant catalog.
type Repository interface {
	ListActive(ctx context.Context) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
}
