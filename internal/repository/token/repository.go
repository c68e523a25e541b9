package token

import (
	"context"
	"time"
)

// Token is an opaque session credential. Exactly one of UserID or
// GuestID is set: customer sessions reference a user row, guest sessions
// carry a generated id so carts and orders work before login.
type Token struct {
	Token     string
	UserID    *string
	GuestID   *string
	Kind      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, token Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
