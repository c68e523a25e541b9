package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type restaurantSeed struct {
	Name         string
	Cuisine      string
	Rating       float64
	DeliveryTime string
	ImageURL     string
	Address      string
	CostForTwo   int64
	IsVeg        bool
}

// Apply inserts basic catalog data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	restaurants := []restaurantSeed{
		{
			Name:         "Spice Garden",
			Cuisine:      "North Indian",
			Rating:       4.5,
			DeliveryTime: "25-30 mins",
			ImageURL:     "https://images.example.com/spice-garden.jpg",
			Address:      "12 MG Road, Indiranagar",
			CostForTwo:   500,
		},
		{
			Name:         "Dragon Palace",
			Cuisine:      "Chinese",
			Rating:       4.2,
			DeliveryTime: "30-35 mins",
			ImageURL:     "https://images.example.com/dragon-palace.jpg",
			Address:      "88 Brigade Road",
			CostForTwo:   600,
		},
		{
			Name:         "Udupi Sagar",
			Cuisine:      "South Indian",
			Rating:       4.6,
			DeliveryTime: "20-25 mins",
			ImageURL:     "https://images.example.com/udupi-sagar.jpg",
			Address:      "4 Jayanagar 4th Block",
			CostForTwo:   300,
			IsVeg:        true,
		},
		{
			Name:         "Biryani House",
			Cuisine:      "Hyderabadi",
			Rating:       4.4,
			DeliveryTime: "35-40 mins",
			ImageURL:     "https://images.example.com/biryani-house.jpg",
			Address:      "21 Residency Road",
			CostForTwo:   450,
		},
		{
			Name:         "La Piazza",
			Cuisine:      "Italian",
			Rating:       4.3,
			DeliveryTime: "30-35 mins",
			ImageURL:     "https://images.example.com/la-piazza.jpg",
			Address:      "7 Church Street",
			CostForTwo:   800,
		},
		{
			Name:         "Green Leaf",
			Cuisine:      "North Indian",
			Rating:       4.1,
			DeliveryTime: "25-30 mins",
			ImageURL:     "https://images.example.com/green-leaf.jpg",
			Address:      "33 Koramangala 5th Block",
			CostForTwo:   350,
			IsVeg:        true,
		},
		{
			Name:         "Taco Fiesta",
			Cuisine:      "Mexican",
			Rating:       4.0,
			DeliveryTime: "35-40 mins",
			ImageURL:     "https://images.example.com/taco-fiesta.jpg",
			Address:      "19 HSR Layout Sector 2",
			CostForTwo:   550,
		},
		{
			Name:         "Sushi Box",
			Cuisine:      "Japanese",
			Rating:       4.7,
			DeliveryTime: "40-45 mins",
			ImageURL:     "https://images.example.com/sushi-box.jpg",
			Address:      "2 Lavelle Road",
			CostForTwo:   1200,
		},
	}

	for _, r := range restaurants {
		if err := upsertRestaurant(ctx, pool, r); err != nil {
			return fmt.Errorf("upsert restaurant %s: %w", r.Name, err)
		}
	}
	return nil
}

func upsertRestaurant(ctx context.Context, pool *pgxpool.Pool, r restaurantSeed) error {
	const q = `
INSERT INTO restaurants (name, cuisine, rating, delivery_time, image_url, address, cost_for_two, is_veg, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
ON CONFLICT (name) DO UPDATE
SET cuisine = EXCLUDED.cuisine,
    rating = EXCLUDED.rating,
    delivery_time = EXCLUDED.delivery_time,
    image_url = EXCLUDED.image_url,
    address = EXCLUDED.address,
    cost_for_two = EXCLUDED.cost_for_two,
    is_veg = EXCLUDED.is_veg,
    is_active = true,
    updated_at = now()
`
	_, err := pool.Exec(ctx, q, r.Name, r.Cuisine, r.Rating, r.DeliveryTime, r.ImageURL, r.Address, r.CostForTwo, r.IsVeg)
	return err
}
