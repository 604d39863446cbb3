package catalog

import (
	"sort"
	"strings"
)

// Sentinel values that leave a filter dimension wide open.
const (
	CategoryAll  = "All"
	PriceBandAll = "All"
)

// Price band labels offered by the storefront.
const (
	PriceBandUnder1000  = "Under ₹1000"
	PriceBand1000To2000 = "₹1000-₹2000"
	PriceBandAbove2000  = "Above ₹2000"
)

// Sort keys accepted by Browse. An unrecognized key keeps the incoming order.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// Query names the customer-facing browse inputs.
type Query struct {
	Search    string
	Category  string
	PriceBand string
	SortKey   string
}

// Browse narrows and orders products for the storefront grid. Steps run in a
// fixed order, each on the previous step's output: visibility, free-text
// search over name/brand/category, exact category, price band, then a stable
// sort. The input slice is never mutated.
func Browse(products []Product, q Query) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.IsVisible {
			filtered = append(filtered, p)
		}
	}

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		kept := filtered[:0]
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.Brand), search) ||
				strings.Contains(strings.ToLower(p.Category), search) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if q.Category != "" && q.Category != CategoryAll {
		kept := filtered[:0]
		for _, p := range filtered {
			if p.Category == q.Category {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if q.PriceBand != "" && q.PriceBand != PriceBandAll {
		kept := filtered[:0]
		for _, p := range filtered {
			if priceBandMatches(q.PriceBand, p.Price) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	switch q.SortKey {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Stock > filtered[j].Stock })
	}

	return filtered
}

func priceBandMatches(band string, price float64) bool {
	switch band {
	case PriceBandUnder1000:
		return price < 1000
	case PriceBand1000To2000:
		return price >= 1000 && price <= 2000
	case PriceBandAbove2000:
		return price > 2000
	default:
		return true
	}
}
