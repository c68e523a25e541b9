package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bitefinder/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Redis stores each owner's line items as one JSON blob with a TTL, so
// abandoned carts expire on their own. Mutations are read-modify-write
// without locking: a session has a single writer, and concurrent tabs
// fall back to last-writer-wins.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Store backed by the given client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func cartKey(ownerID string) string {
	return "cart:" + ownerID
}

func (r *Redis) Get(ctx context.Context, ownerID string) (domain.Cart, error) {
	items, err := r.load(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{OwnerID: ownerID, Items: items}, nil
}

func (r *Redis) AddItem(ctx context.Context, ownerID string, rest domain.Restaurant) (domain.Cart, error) {
	return r.mutate(ctx, ownerID, func(items []domain.CartItem) []domain.CartItem {
		return addItem(items, rest)
	})
}

func (r *Redis) RemoveItem(ctx context.Context, ownerID, restaurantID string) (domain.Cart, error) {
	return r.mutate(ctx, ownerID, func(items []domain.CartItem) []domain.CartItem {
		return removeItem(items, restaurantID)
	})
}

func (r *Redis) UpdateQuantity(ctx context.Context, ownerID, restaurantID string, quantity int) (domain.Cart, error) {
	return r.mutate(ctx, ownerID, func(items []domain.CartItem) []domain.CartItem {
		return updateQuantity(items, restaurantID, quantity)
	})
}

func (r *Redis) Clear(ctx context.Context, ownerID string) error {
	return r.client.Del(ctx, cartKey(ownerID)).Err()
}

func (r *Redis) load(ctx context.Context, ownerID string) ([]domain.CartItem, error) {
	raw, err := r.client.Get(ctx, cartKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Redis) mutate(ctx context.Context, ownerID string, fn func([]domain.CartItem) []domain.CartItem) (domain.Cart, error) {
	items, err := r.load(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, err
	}
	items = fn(items)
	if len(items) == 0 {
		if err := r.client.Del(ctx, cartKey(ownerID)).Err(); err != nil {
			return domain.Cart{}, err
		}
		return domain.Cart{OwnerID: ownerID}, nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := r.client.Set(ctx, cartKey(ownerID), raw, r.ttl).Err(); err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{OwnerID: ownerID, Items: items}, nil
}
