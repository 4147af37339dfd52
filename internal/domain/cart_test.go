package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCart_Total(t *testing.T) {
	tests := []struct {
		name     string
		cart     Cart
		expected string
	}{
		{
			name:     "empty cart",
			cart:     Cart{},
			expected: "0",
		},
		{
			name: "single line",
			cart: Cart{
				{Name: "Air", Price: decimal.RequireFromString("100"), Quantity: 2},
			},
			expected: "200",
		},
		{
			name: "multiple lines with fractional prices",
			cart: Cart{
				{Name: "Air", Price: decimal.RequireFromString("99.99"), Quantity: 1},
				{Name: "Max", Price: decimal.RequireFromString("0.01"), Quantity: 3},
			},
			expected: "100.02",
		},
		{
			name: "duplicate (product, variant) lines stay separate",
			cart: Cart{
				{ProductID: "p1", Variant: "US 9", Price: decimal.RequireFromString("50"), Quantity: 1},
				{ProductID: "p1", Variant: "US 9", Price: decimal.RequireFromString("50"), Quantity: 1},
			},
			expected: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cart.Total(); !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("Total() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestCart_ItemCount(t *testing.T) {
	cart := Cart{
		{Quantity: 2},
		{Quantity: 3},
	}
	if got := cart.ItemCount(); got != 5 {
		t.Errorf("ItemCount() = %d, want 5", got)
	}
}

func TestProduct_Thumbnail(t *testing.T) {
	withImages := Product{Images: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}}
	if got := withImages.Thumbnail(); got != "https://cdn.example.com/a.jpg" {
		t.Errorf("Thumbnail() = %q, want first image", got)
	}

	noImages := Product{}
	if got := noImages.Thumbnail(); got != PlaceholderImage {
		t.Errorf("Thumbnail() = %q, want placeholder", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Air", Category: " Shoes "},
		{ID: "2", Name: "Hoodie", Category: "Apparel"},
		{ID: "3", Name: "Max", Category: "SHOES"},
	}

	tests := []struct {
		name        string
		category    string
		expectedIDs []string
	}{
		{name: "case-insensitive and whitespace-tolerant", category: "shoes", expectedIDs: []string{"1", "3"}},
		{name: "request side normalized too", category: "  APPAREL ", expectedIDs: []string{"2"}},
		{name: "no match", category: "hats", expectedIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCategory(products, tt.category)
			if len(got) != len(tt.expectedIDs) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.expectedIDs))
			}
			for i, p := range got {
				if p.ID != tt.expectedIDs[i] {
					t.Errorf("product[%d].ID = %q, want %q", i, p.ID, tt.expectedIDs[i])
				}
			}
		})
	}
}

func TestSpotlightOnly(t *testing.T) {
	products := []Product{
		{ID: "1", Spotlight: true},
		{ID: "2"},
		{ID: "3", Spotlight: true},
	}
	got := SpotlightOnly(products)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("SpotlightOnly() = %+v, want products 1 and 3 in order", got)
	}
}

func TestSession_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected bool
	}{
		{name: "token and exact role", session: Session{Token: "t", Role: "ADMIN"}, expected: true},
		{name: "lowercase role is rejected", session: Session{Token: "t", Role: "admin"}, expected: false},
		{name: "role without token", session: Session{Role: "ADMIN"}, expected: false},
		{name: "logged out", session: Session{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.IsAdmin(); got != tt.expected {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.expected)
			}
		})
	}
}
