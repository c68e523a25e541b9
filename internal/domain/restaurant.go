package domain

import "time"

// Restaurant is a catalog entry. The catalog is read-only from this
// system's perspective; rows are maintained out of band (see cmd/seed).
type Restaurant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Cuisine      string    `json:"cuisine"`
	Rating       float64   `json:"rating"`
	DeliveryTime string    `json:"deliveryTime"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Address      string    `json:"address"`
	CostForTwo   int64     `json:"costForTwo"`
	IsVeg        bool      `json:"isVeg"`
	IsActive     bool      `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
