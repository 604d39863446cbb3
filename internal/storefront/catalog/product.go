// Package catalog holds the product model and the browse filter pipeline.
package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Product is one catalog record. Prices are rupee amounts without minor
// units; OriginalPrice is nil when the product has no strike-through price.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Category      string    `json:"category"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors"`
	Stock         int       `json:"stock"`
	Description   string    `json:"description"`
	IsVisible     bool      `json:"isVisible"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DiscountPercent derives the rounded strike-through discount for display.
// It returns nil when no original price is set, and clamps to zero so a
// product priced above its original price never shows a negative discount.
func (p Product) DiscountPercent() *int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return nil
	}
	percent := int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
	if percent < 0 {
		percent = 0
	}
	return &percent
}

// Validate checks the fields an admin submission must provide. A failed
// validation rejects the whole record; nothing is partially applied.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if strings.TrimSpace(p.Brand) == "" {
		return fmt.Errorf("product brand is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("product category is required")
	}
	if p.Price <= 0 {
		return fmt.Errorf("product price must be greater than zero")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice <= 0 {
		return fmt.Errorf("product original price must be greater than zero when set")
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("product needs at least one size")
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("product needs at least one color")
	}
	if p.Stock < 0 {
		return fmt.Errorf("product stock must not be negative")
	}
	if strings.TrimSpace(p.Image) == "" {
		return fmt.Errorf("product image is required")
	}
	return nil
}

// HasSize reports whether size is one of the product's offered sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether color is one of the product's offered colors.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
