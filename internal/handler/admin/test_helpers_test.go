package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
)

// mockCatalog implements CatalogAPI for testing
type mockCatalog struct {
	listProductsFunc         func(ctx context.Context) ([]domain.Product, error)
	getProductFunc           func(ctx context.Context, id string) (*domain.Product, error)
	createProductFunc        func(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	updateProductFunc        func(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error)
	deleteProductFunc        func(ctx context.Context, id string) error
	listInventoryFunc        func(ctx context.Context, productID string) ([]domain.InventoryRecord, error)
	createInventoryFunc      func(ctx context.Context, input domain.InventoryInput, token string) (*domain.InventoryRecord, error)
	updateInventoryStockFunc func(ctx context.Context, id string, stock int, token string) (*domain.InventoryRecord, error)
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

func (m *mockCatalog) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	if m.createProductFunc != nil {
		return m.createProductFunc(ctx, input)
	}
	return &domain.Product{}, nil
}

func (m *mockCatalog) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	if m.updateProductFunc != nil {
		return m.updateProductFunc(ctx, id, input)
	}
	return &domain.Product{}, nil
}

func (m *mockCatalog) DeleteProduct(ctx context.Context, id string) error {
	if m.deleteProductFunc != nil {
		return m.deleteProductFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalog) ListInventory(ctx context.Context, productID string) ([]domain.InventoryRecord, error) {
	if m.listInventoryFunc != nil {
		return m.listInventoryFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockCatalog) CreateInventory(ctx context.Context, input domain.InventoryInput, token string) (*domain.InventoryRecord, error) {
	if m.createInventoryFunc != nil {
		return m.createInventoryFunc(ctx, input, token)
	}
	return &domain.InventoryRecord{}, nil
}

func (m *mockCatalog) UpdateInventoryStock(ctx context.Context, id string, stock int, token string) (*domain.InventoryRecord, error) {
	if m.updateInventoryStockFunc != nil {
		return m.updateInventoryStockFunc(ctx, id, stock, token)
	}
	return &domain.InventoryRecord{}, nil
}

func newTestRenderer(t *testing.T) *handler.Renderer {
	t.Helper()
	r, err := handler.NewRenderer("../../../web/templates")
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	return r
}

// asAdmin attaches an admin session to the request context.
func asAdmin(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionContextKey, domain.Session{Token: "admin-tok", Role: "ADMIN"})
	return r.WithContext(ctx)
}
