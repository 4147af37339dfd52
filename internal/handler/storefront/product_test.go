package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stridewear/stride/internal/cartstore"
	"github.com/stridewear/stride/internal/clientstate"
	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/service"
)

var testProduct = domain.Product{
	ID:        "p1",
	Name:      "Trail Runner",
	Category:  "Shoes",
	Price:     decimal.RequireFromString("129.99"),
	Spotlight: true,
}

func newProductHandler(t *testing.T, catalog *mockCatalog) *ProductHandler {
	t.Helper()
	return NewProductHandler(catalog, service.NewCartService(testLogger()), newTestRenderer(t))
}

func TestProductHandler_Detail(t *testing.T) {
	inventory := []domain.InventoryRecord{
		{ID: "a", ProductID: "p1", Variant: "US 9", Stock: 4},
		{ID: "b", ProductID: "p1", Variant: "US 10", Stock: 0},
	}

	catalog := &mockCatalog{
		getProductFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			if id != "p1" {
				return nil, domain.NotFound("catalog.get_product", "product", id)
			}
			p := testProduct
			return &p, nil
		},
		listInventoryFunc: func(ctx context.Context, productID string) ([]domain.InventoryRecord, error) {
			return inventory, nil
		},
	}

	t.Run("renders variant options with stock counts", func(t *testing.T) {
		h := newProductHandler(t, catalog)

		req := httptest.NewRequest(http.MethodGet, "/product/p1", nil)
		req.SetPathValue("id", "p1")
		req = withState(req, clientstate.NewMemory(), domain.Session{})
		w := httptest.NewRecorder()

		h.Detail(w, req)

		body := w.Body.String()
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if !strings.Contains(body, "Trail Runner") {
			t.Error("expected product name")
		}
		if !strings.Contains(body, "US 9 (4 left)") {
			t.Error("expected variant label with stock count")
		}
		if !strings.Contains(body, "US 10 (0 left)") {
			t.Error("expected zero-stock variant to still be listed")
		}
		if !strings.Contains(body, "$129.99") {
			t.Error("expected formatted price")
		}
		if strings.Contains(body, "max=") {
			t.Error("quantity input should carry no bound without a selected variant")
		}
	})

	t.Run("shows advisory stock for the selected variant", func(t *testing.T) {
		h := newProductHandler(t, catalog)

		req := httptest.NewRequest(http.MethodGet, "/product/p1?variant=US+9", nil)
		req.SetPathValue("id", "p1")
		req = withState(req, clientstate.NewMemory(), domain.Session{})
		w := httptest.NewRecorder()

		h.Detail(w, req)

		body := w.Body.String()
		if !strings.Contains(body, "4 in stock") {
			t.Error("expected selected variant stock")
		}
		if !strings.Contains(body, `max="4"`) {
			t.Error("expected quantity input capped at the selected variant's stock")
		}
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		h := newProductHandler(t, catalog)

		req := httptest.NewRequest(http.MethodGet, "/product/missing", nil)
		req.SetPathValue("id", "missing")
		req = withState(req, clientstate.NewMemory(), domain.Session{})
		w := httptest.NewRecorder()

		h.Detail(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("inventory failure still renders the page", func(t *testing.T) {
		broken := &mockCatalog{
			getProductFunc: catalog.getProductFunc,
			listInventoryFunc: func(ctx context.Context, productID string) ([]domain.InventoryRecord, error) {
				return nil, domain.Unavailable(context.DeadlineExceeded, "catalog.list_inventory", "catalog service unreachable")
			},
		}
		h := newProductHandler(t, broken)

		req := httptest.NewRequest(http.MethodGet, "/product/p1", nil)
		req.SetPathValue("id", "p1")
		req = withState(req, clientstate.NewMemory(), domain.Session{})
		w := httptest.NewRecorder()

		h.Detail(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Trail Runner") {
			t.Error("expected product name despite inventory failure")
		}
	})
}

func TestProductHandler_Add(t *testing.T) {
	catalog := &mockCatalog{
		getProductFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			p := testProduct
			return &p, nil
		},
	}

	post := func(t *testing.T, h *ProductHandler, kv clientstate.KV, form url.Values) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req = withState(req, kv, domain.Session{})
		w := httptest.NewRecorder()
		h.Add(w, req)
		return w
	}

	t.Run("valid add appends to cart and redirects", func(t *testing.T) {
		h := newProductHandler(t, catalog)
		kv := clientstate.NewMemory()

		w := post(t, h, kv, url.Values{
			"product_id": {"p1"},
			"variant":    {"US 9"},
			"quantity":   {"2"},
		})

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected redirect, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/cart" {
			t.Errorf("Location = %q, want /cart", loc)
		}

		cart := cartstore.New(kv).Load()
		if len(cart) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(cart))
		}
		if cart[0].Name != "Trail Runner" || cart[0].Quantity != 2 {
			t.Errorf("unexpected line item: %+v", cart[0])
		}
	})

	t.Run("repeated adds stay separate lines", func(t *testing.T) {
		h := newProductHandler(t, catalog)
		kv := clientstate.NewMemory()

		form := url.Values{"product_id": {"p1"}, "variant": {"US 9"}, "quantity": {"1"}}
		post(t, h, kv, form)
		post(t, h, kv, form)

		cart := cartstore.New(kv).Load()
		if len(cart) != 2 {
			t.Errorf("expected 2 line items, got %d", len(cart))
		}
	})

	t.Run("missing variant redirects back with error", func(t *testing.T) {
		h := newProductHandler(t, catalog)
		kv := clientstate.NewMemory()

		w := post(t, h, kv, url.Values{
			"product_id": {"p1"},
			"quantity":   {"1"},
		})

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected redirect, got %d", w.Code)
		}
		loc := w.Header().Get("Location")
		if !strings.HasPrefix(loc, "/product/p1?") || !strings.Contains(loc, "error=") {
			t.Errorf("Location = %q, want product page with error", loc)
		}
		if len(cartstore.New(kv).Load()) != 0 {
			t.Error("cart should be unchanged")
		}
	})

	t.Run("zero quantity redirects back with error", func(t *testing.T) {
		h := newProductHandler(t, catalog)
		kv := clientstate.NewMemory()

		w := post(t, h, kv, url.Values{
			"product_id": {"p1"},
			"variant":    {"US 9"},
			"quantity":   {"0"},
		})

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected redirect, got %d", w.Code)
		}
		if len(cartstore.New(kv).Load()) != 0 {
			t.Error("cart should be unchanged")
		}
	})
}
