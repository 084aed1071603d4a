package domain

import (
	"fmt"
	"strings"
)

// CategoryAll is the sentinel category matching every product.
const CategoryAll = "all"

// Product is a single catalog record, sourced read-only from the products
// JSON document.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Rating        float64  `json:"rating"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	Description   string   `json:"description"`
}

// PrimaryImage returns the first image reference, or empty if none exist.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// Validate checks the per-record catalog invariants.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be a positive integer, got %d", p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product %d: name must not be empty", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %d: price must not be negative, got %v", p.ID, p.Price)
	}
	if p.DiscountPrice != nil && *p.DiscountPrice >= p.Price {
		return fmt.Errorf("product %d: discount price %v must be below price %v", p.ID, *p.DiscountPrice, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %d: rating must be within 0-5, got %v", p.ID, p.Rating)
	}
	return nil
}

// SortKey identifies a catalog sort order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey maps a raw sort parameter to a known key. Unknown values fall
// back to the featured order.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc, SortFeatured:
		return SortKey(raw)
	default:
		return SortFeatured
	}
}

// ProductFilter holds the conjunctive criteria for catalog filtering. Every
// field is optional; a zero filter matches the whole catalog.
type ProductFilter struct {
	Categories []string
	Sizes      []string
	Colors     []string
	MaxPrice   *float64
}

// Matches reports whether p satisfies every set criterion.
func (f ProductFilter) Matches(p *Product) bool {
	if len(f.Categories) > 0 && !containsString(f.Categories, CategoryAll) {
		if !containsString(f.Categories, p.Category) {
			return false
		}
	}

	if len(f.Sizes) > 0 && !overlaps(p.Sizes, f.Sizes) {
		return false
	}

	if len(f.Colors) > 0 && !overlaps(p.Colors, f.Colors) {
		return false
	}

	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func overlaps(offered, requested []string) bool {
	for _, o := range offered {
		if containsString(requested, o) {
			return true
		}
	}
	return false
}
