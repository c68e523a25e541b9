package order

import "bitefinder/internal/domain"

// Stage is one step of the tracking timeline.
type Stage struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// Timeline renders the fixed four-stage tracking view for an order.
// Since no operation advances an order past placement, only the first
// stage ever shows as completed.
func Timeline(o domain.Order) []Stage {
	return []Stage{
		{Key: "placed", Label: "Order Placed", Completed: o.Status == domain.OrderStatusPlaced},
		{Key: "preparing", Label: "Preparing Food"},
		{Key: "out_for_delivery", Label: "Out for Delivery"},
		{Key: "delivered", Label: "Delivered"},
	}
}
