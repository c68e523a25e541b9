// Package pricing computes cart totals. All functions are pure; amounts
// are whole currency units.
package pricing

import "bitefinder/internal/domain"

// DeliveryFee is charged once per non-empty cart.
const DeliveryFee int64 = 40

// taxRatePercent is applied to the subtotal, rounded half-up.
const taxRatePercent int64 = 5

// Totals bundles every amount shown at checkout.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// Subtotal sums unit price times quantity over all line items.
func Subtotal(items []domain.CartItem) int64 {
	var sum int64
	for _, item := range items {
		sum += item.UnitPrice * int64(item.Quantity)
	}
	return sum
}

// Fee returns the flat delivery fee, zero for an empty cart.
func Fee(items []domain.CartItem) int64 {
	if len(items) == 0 {
		return 0
	}
	return DeliveryFee
}

// Tax is 5% of the subtotal, rounded half-up in integer arithmetic.
func Tax(subtotal int64) int64 {
	return (subtotal*taxRatePercent + 50) / 100
}

// Compute derives all totals for the given line items. An empty cart
// yields all zeros.
func Compute(items []domain.CartItem) Totals {
	subtotal := Subtotal(items)
	fee := Fee(items)
	tax := Tax(subtotal)
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}
