package domain

import "time"

// OrderStatusPlaced is the only status any order ever carries: nothing in
// the system advances an order past placement. The tracking timeline is
// rendered from this fixed starting point.
const OrderStatusPlaced = "placed"

// DeliveryAddress is the checkout address form.
type DeliveryAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
}

// OrderTotals are the amounts computed at placement time.
type OrderTotals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// Order is an immutable snapshot of a successful checkout. Items are
// copied from the cart at placement and are immune to later cart mutation.
type Order struct {
	ID                string          `json:"id"`
	OwnerID           string          `json:"-"`
	Items             []CartItem      `json:"items"`
	DeliveryAddress   DeliveryAddress `json:"deliveryAddress"`
	PaymentMethod     string          `json:"paymentMethod"`
	Totals            OrderTotals     `json:"totals"`
	Status            string          `json:"status"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	CreatedAt         time.Time       `json:"createdAt"`
}
