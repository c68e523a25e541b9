package user

import (
	"context"

	"bitefinder/internal/domain"
)

// ProfilePatch names exactly the fields a profile update may change.
// Nil pointers leave the current value untouched.
type ProfilePatch struct {
	Name    *string
	Phone   *string
	Address *string
}

// Repository persists and fetches user accounts.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
}
