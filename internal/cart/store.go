// Package cart manages per-session cart state. Mutations follow the host
// UI's synchronous event model: one writer per owner, last writer wins.
package cart

import (
	"context"

	"bitefinder/internal/domain"
)

// Store holds cart line items keyed by session owner id.
//
// AddItem increments the quantity of an existing line for the same
// restaurant, otherwise appends a new line with quantity 1 and the unit
// price captured from the restaurant's cost-for-two. RemoveItem is a
// no-op when the line is absent. UpdateQuantity with a quantity below 1
// leaves the line untouched; removal is the only way to delete a line.
type Store interface {
	Get(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, r domain.Restaurant) (domain.Cart, error)
	RemoveItem(ctx context.Context, ownerID, restaurantID string) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, ownerID, restaurantID string, quantity int) (domain.Cart, error)
	Clear(ctx context.Context, ownerID string) error
}

func addItem(items []domain.CartItem, r domain.Restaurant) []domain.CartItem {
	for i := range items {
		if items[i].Restaurant.ID == r.ID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, domain.CartItem{
		Restaurant: r,
		Quantity:   1,
		UnitPrice:  r.CostForTwo,
	})
}

func removeItem(items []domain.CartItem, restaurantID string) []domain.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.Restaurant.ID != restaurantID {
			out = append(out, item)
		}
	}
	return out
}

func updateQuantity(items []domain.CartItem, restaurantID string, quantity int) []domain.CartItem {
	if quantity < 1 {
		return items
	}
	for i := range items {
		if items[i].Restaurant.ID == restaurantID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

func cloneItems(items []domain.CartItem) []domain.CartItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}
