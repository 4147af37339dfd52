package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The catalog service speaks bare JSON numbers for prices; decimal
	// values must not serialize as quoted strings anywhere on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// PlaceholderImage is shown when a product has no images.
const PlaceholderImage = "https://via.placeholder.com/400"

// Product is a read-only, ephemeral copy of a catalog product. The external
// catalog service owns the record; mutations go through explicit
// create/update calls on the catalog client.
type Product struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Images   []string        `json:"images,omitempty"`
	// Spotlight marks products curated for homepage promotion.
	Spotlight bool `json:"spotlight"`
}

// Thumbnail returns the first image URL, or a placeholder when the product
// has none.
func (p Product) Thumbnail() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return PlaceholderImage
}

// ProductInput carries the writable fields for product create/update calls.
type ProductInput struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Images    []string        `json:"images,omitempty"`
	Spotlight bool            `json:"spotlight"`
}

// InventoryRecord is one purchasable variant of a product with its stock
// count. Variant labels are unique within a product but not globally.
type InventoryRecord struct {
	ID        string `json:"_id"`
	ProductID string `json:"productId"`
	Variant   string `json:"variant"`
	Stock     int    `json:"stock"`
}

// InventoryInput carries the fields for an inventory create call.
type InventoryInput struct {
	ProductID string `json:"productId"`
	Variant   string `json:"variant"`
	Stock     int    `json:"stock"`
}

// NormalizeCategory canonicalizes a category name for comparison:
// surrounding whitespace is stripped and the result lowercased. Both sides
// of a category match must pass through here.
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FilterByCategory returns the products whose category matches name,
// compared case-insensitively and whitespace-tolerantly. Filtering is a
// client-side operation; the catalog service has no category endpoint.
func FilterByCategory(products []Product, name string) []Product {
	want := NormalizeCategory(name)
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if NormalizeCategory(p.Category) == want {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SpotlightOnly returns the curated subset of products flagged for homepage
// promotion, preserving catalog order.
func SpotlightOnly(products []Product) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Spotlight {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
