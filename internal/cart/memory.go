package cart

import (
	"context"
	"sync"

	"bitefinder/internal/domain"
)

// Memory is the default in-process Store. It is also the store used by
// tests.
type Memory struct {
	mu    sync.Mutex
	items map[string][]domain.CartItem
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]domain.CartItem)}
}

func (m *Memory) Get(_ context.Context, ownerID string) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.Cart{OwnerID: ownerID, Items: cloneItems(m.items[ownerID])}, nil
}

func (m *Memory) AddItem(_ context.Context, ownerID string, r domain.Restaurant) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[ownerID] = addItem(m.items[ownerID], r)
	return domain.Cart{OwnerID: ownerID, Items: cloneItems(m.items[ownerID])}, nil
}

func (m *Memory) RemoveItem(_ context.Context, ownerID, restaurantID string) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[ownerID] = removeItem(m.items[ownerID], restaurantID)
	return domain.Cart{OwnerID: ownerID, Items: cloneItems(m.items[ownerID])}, nil
}

func (m *Memory) UpdateQuantity(_ context.Context, ownerID, restaurantID string, quantity int) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[ownerID] = updateQuantity(m.items[ownerID], restaurantID, quantity)
	return domain.Cart{OwnerID: ownerID, Items: cloneItems(m.items[ownerID])}, nil
}

func (m *Memory) Clear(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, ownerID)
	return nil
}
