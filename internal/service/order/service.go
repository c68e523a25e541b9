// Package order owns order placement and lookup. An order is an
// immutable snapshot: its items and totals are fixed at placement and
// never follow later cart or catalog changes.
package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"bitefinder/internal/cart"
	"bitefinder/internal/checkout"
	"bitefinder/internal/domain"
	"bitefinder/internal/events"
	"bitefinder/internal/pricing"
	orderrepo "bitefinder/internal/repository/order"
)

// ErrEmptyCart rejects checkout when there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// orderIDPrefix + unix millis + random suffix. Collisions are treated as
// negligible, not eliminated; the primary key catches the rest.
const orderIDPrefix = "ORD"

const estimatedDelivery = "30-35 mins"

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// ValidationError aggregates every form violation found at checkout.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

type paymentProcessor interface {
	Process(ctx context.Context) error
}

type Service struct {
	orders   orderrepo.Repository
	carts    cart.Store
	payments paymentProcessor
	events   events.Publisher
	logger   *log.Logger
	now      func() time.Time
}

// New builds a Service. A nil publisher disables event emission.
func New(orders orderrepo.Repository, carts cart.Store, payments paymentProcessor, publisher events.Publisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		orders:   orders,
		carts:    carts,
		payments: payments,
		events:   publisher,
		logger:   logger,
		now:      time.Now,
	}
}

// PlaceOrderInput is the checkout submission.
type PlaceOrderInput struct {
	Address domain.DeliveryAddress `json:"address"`
	Payment checkout.Payment       `json:"payment"`
}

// PlaceOrder runs the full checkout: validate both forms (all violations
// reported together), charge the simulated gateway, persist the order
// snapshot, then clear the cart. A declined payment leaves every store
// untouched so the caller can simply retry.
func (s *Service) PlaceOrder(ctx context.Context, ownerID string, in PlaceOrderInput) (*domain.Order, error) {
	fields := checkout.ValidateAddress(in.Address)
	for k, v := range checkout.ValidatePayment(in.Payment) {
		fields[k] = v
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	c, err := s.carts.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}
	totals := pricing.Compute(c.Items)

	if err := s.payments.Process(ctx); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	o := domain.Order{
		ID:              s.newOrderID(now),
		OwnerID:         ownerID,
		Items:           c.Items,
		DeliveryAddress: in.Address,
		PaymentMethod:   in.Payment.Method,
		Totals: domain.OrderTotals{
			Subtotal:    totals.Subtotal,
			DeliveryFee: totals.DeliveryFee,
			Tax:         totals.Tax,
			Total:       totals.Total,
		},
		Status:            domain.OrderStatusPlaced,
		EstimatedDelivery: estimatedDelivery,
		CreatedAt:         now,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if err := s.events.OrderPlaced(ctx, events.OrderPlaced{
		OrderID:   o.ID,
		OwnerID:   ownerID,
		Total:     o.Totals.Total,
		ItemCount: len(o.Items),
		PlacedAt:  o.CreatedAt,
	}); err != nil {
		s.logger.Printf("order service: publish order=%s err=%v", o.ID, err)
	}

	if err := s.carts.Clear(ctx, ownerID); err != nil {
		// The order is already persisted; a stale cart is recoverable.
		s.logger.Printf("order service: clear cart owner=%s err=%v", ownerID, err)
	}
	return &o, nil
}

// Get fetches one of the owner's orders.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, ownerID, id)
}

// ListRecent returns the owner's orders, most recent first.
func (s *Service) ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.orders.ListRecent(ctx, ownerID, limit)
}

func (s *Service) newOrderID(now time.Time) string {
	return fmt.Sprintf("%s%d%d", orderIDPrefix, now.UnixMilli(), rand.Intn(1000))
}
