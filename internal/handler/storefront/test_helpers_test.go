package storefront

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stridewear/stride/internal/clientstate"
	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
)

// mockCatalog implements CatalogAPI for testing
type mockCatalog struct {
	listProductsFunc  func(ctx context.Context) ([]domain.Product, error)
	getProductFunc    func(ctx context.Context, id string) (*domain.Product, error)
	listInventoryFunc func(ctx context.Context, productID string) ([]domain.InventoryRecord, error)
}

func (m *mockCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.listProductsFunc != nil {
		return m.listProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalog) ListInventory(ctx context.Context, productID string) ([]domain.InventoryRecord, error) {
	if m.listInventoryFunc != nil {
		return m.listInventoryFunc(ctx, productID)
	}
	return nil, nil
}

func newTestRenderer(t *testing.T) *handler.Renderer {
	t.Helper()
	r, err := handler.NewRenderer("../../../web/templates")
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	return r
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withState attaches a client-state KV and session to the request context,
// standing in for the WithClientState middleware.
func withState(r *http.Request, kv clientstate.KV, sess domain.Session) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ClientStateContextKey, clientstate.KV(kv))
	ctx = context.WithValue(ctx, middleware.SessionContextKey, sess)
	return r.WithContext(ctx)
}
