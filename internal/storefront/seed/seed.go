// Package seed loads the starter catalog into an empty product store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
)

func price(v float64) *float64 { return &v }

// SampleProducts returns the starter catalog. IDs are fixed so reseeding an
// already seeded store is detected instead of duplicating rows.
func SampleProducts() []catalog.Product {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return []catalog.Product{
		{
			ID:            "seed-oxford-shirt",
			Name:          "Classic Oxford Shirt",
			Brand:         "Arrow",
			Category:      "Shirts",
			Price:         999,
			OriginalPrice: price(1499),
			Image:         "/media/seed-oxford-shirt.jpg",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"White", "Sky Blue"},
			Stock:         24,
			Description:   "Button-down oxford weave shirt in breathable cotton.",
			IsVisible:     true,
			CreatedAt:     base,
		},
		{
			ID:            "seed-linen-shirt",
			Name:          "Linen Summer Shirt",
			Brand:         "Fabindia",
			Category:      "Shirts",
			Price:         1299,
			OriginalPrice: price(1799),
			Image:         "/media/seed-linen-shirt.jpg",
			Sizes:         []string{"M", "L", "XL"},
			Colors:        []string{"Beige", "Olive"},
			Stock:         12,
			Description:   "Lightweight linen shirt for warm weather.",
			IsVisible:     true,
			CreatedAt:     base.Add(1 * time.Hour),
		},
		{
			ID:          "seed-chikankari-kurta",
			Name:        "Chikankari Kurta",
			Brand:       "Manyavar",
			Category:    "Kurtas",
			Price:       1899,
			Image:       "/media/seed-chikankari-kurta.jpg",
			Sizes:       []string{"M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Cream"},
			Stock:       10,
			Description: "Hand-embroidered chikankari kurta for festive wear.",
			IsVisible:   true,
			CreatedAt:   base.Add(2 * time.Hour),
		},
		{
			ID:            "seed-cotton-kurta",
			Name:          "Everyday Cotton Kurta",
			Brand:         "Fabindia",
			Category:      "Kurtas",
			Price:         899,
			OriginalPrice: price(1199),
			Image:         "/media/seed-cotton-kurta.jpg",
			Sizes:         []string{"S", "M", "L"},
			Colors:        []string{"Maroon", "Navy"},
			Stock:         18,
			Description:   "Straight-cut cotton kurta for daily wear.",
			IsVisible:     true,
			CreatedAt:     base.Add(3 * time.Hour),
		},
		{
			ID:            "seed-graphic-tee",
			Name:          "Graphic Print T-Shirt",
			Brand:         "Roadster",
			Category:      "T-Shirts",
			Price:         599,
			OriginalPrice: price(899),
			Image:         "/media/seed-graphic-tee.jpg",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Black", "Grey"},
			Stock:         40,
			Description:   "Regular-fit crew neck tee with front print.",
			IsVisible:     true,
			CreatedAt:     base.Add(4 * time.Hour),
		},
		{
			ID:          "seed-polo-tee",
			Name:        "Pique Polo T-Shirt",
			Brand:       "U.S. Polo Assn.",
			Category:    "T-Shirts",
			Price:       1099,
			Image:       "/media/seed-polo-tee.jpg",
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"Navy", "White", "Green"},
			Stock:       15,
			Description: "Classic-fit polo in pique cotton.",
			IsVisible:   true,
			CreatedAt:   base.Add(5 * time.Hour),
		},
		{
			ID:            "seed-slim-jeans",
			Name:          "Slim Fit Jeans",
			Brand:         "Levi's",
			Category:      "Jeans",
			Price:         2199,
			OriginalPrice: price(2999),
			Image:         "/media/seed-slim-jeans.jpg",
			Sizes:         []string{"30", "32", "34", "36"},
			Colors:        []string{"Indigo", "Black"},
			Stock:         20,
			Description:   "Mid-rise slim jeans with slight stretch.",
			IsVisible:     true,
			CreatedAt:     base.Add(6 * time.Hour),
		},
		{
			ID:          "seed-relaxed-jeans",
			Name:        "Relaxed Fit Jeans",
			Brand:       "Wrangler",
			Category:    "Jeans",
			Price:       1799,
			Image:       "/media/seed-relaxed-jeans.jpg",
			Sizes:       []string{"32", "34", "36"},
			Colors:      []string{"Light Blue"},
			Stock:       0,
			Description: "Relaxed straight jeans in washed denim.",
			IsVisible:   true,
			CreatedAt:   base.Add(7 * time.Hour),
		},
	}
}

// Run inserts the sample catalog. Products already present are skipped so the
// command stays safe to rerun.
func Run(ctx context.Context, store storage.ProductStore) error {
	seeded := 0
	for _, product := range SampleProducts() {
		if _, err := store.CreateProduct(ctx, product); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("seed product %s: %w", product.ID, err)
		}
		seeded++
	}
	log.Printf("seeded %d products", seeded)
	return nil
}
