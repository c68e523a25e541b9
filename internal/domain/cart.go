package domain

// CartItem is one restaurant's line in a cart. UnitPrice is captured from
// the restaurant's cost-for-two at add time and does not follow later
// catalog changes.
type CartItem struct {
	Restaurant Restaurant `json:"restaurant"`
	Quantity   int        `json:"quantity"`
	UnitPrice  int64      `json:"unitPrice"`
}

// Cart holds the ordered line items for one session owner. At most one
// line exists per restaurant id.
type Cart struct {
	OwnerID string     `json:"-"`
	Items   []CartItem `json:"items"`
}
