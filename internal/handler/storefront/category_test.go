package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stridewear/stride/internal/clientstate"
	"github.com/stridewear/stride/internal/domain"
)

func TestCategoryHandler_ServeHTTP(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Trail Runner", Category: "Shoes", Price: decimal.NewFromInt(130)},
		{ID: "2", Name: "Windbreaker", Category: "Apparel", Price: decimal.NewFromInt(80)},
		{ID: "3", Name: "Road Racer", Category: " shoes ", Price: decimal.NewFromInt(95)},
	}

	tests := []struct {
		name      string
		category  string
		checkBody func(t *testing.T, body string)
	}{
		{
			name:     "matches case-insensitively and whitespace-tolerantly",
			category: "shoes",
			checkBody: func(t *testing.T, body string) {
				if !strings.Contains(body, "Trail Runner") {
					t.Error("expected Trail Runner (category Shoes)")
				}
				if !strings.Contains(body, "Road Racer") {
					t.Error("expected Road Racer (category \" shoes \")")
				}
				if strings.Contains(body, "Windbreaker") {
					t.Error("Apparel product should not appear")
				}
			},
		},
		{
			name:     "capitalizes the category heading",
			category: "shoes",
			checkBody: func(t *testing.T, body string) {
				if !strings.Contains(body, "<h1>Shoes</h1>") {
					t.Error("expected capitalized heading")
				}
			},
		},
		{
			name:     "unknown category shows empty state",
			category: "hats",
			checkBody: func(t *testing.T, body string) {
				if !strings.Contains(body, "No products found in this category.") {
					t.Error("expected empty state message")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &mockCatalog{
				listProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
					return products, nil
				},
			}
			h := NewCategoryHandler(catalog, newTestRenderer(t))

			req := httptest.NewRequest(http.MethodGet, "/category/"+tt.category, nil)
			req.SetPathValue("name", tt.category)
			req = withState(req, clientstate.NewMemory(), domain.Session{})
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}
			tt.checkBody(t, w.Body.String())
		})
	}
}
