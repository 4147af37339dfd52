// Package admin holds the admin console handlers: product CRUD and
// inventory management, all proxied to the external catalog service.
package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
)

// CatalogAPI is the slice of the catalog client the admin console uses.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListInventory(ctx context.Context, productID string) ([]domain.InventoryRecord, error)
	CreateInventory(ctx context.Context, input domain.InventoryInput, token string) (*domain.InventoryRecord, error)
	UpdateInventoryStock(ctx context.Context, id string, stock int, token string) (*domain.InventoryRecord, error)
}

// BaseTemplateData returns common data for all admin templates
func BaseTemplateData(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"Year":      time.Now().Year(),
		"IsAdmin":   middleware.GetSession(r.Context()).IsAdmin(),
		"ActiveTab": "",
	}
}

// DashboardHandler handles the admin landing page
type DashboardHandler struct {
	catalog  CatalogAPI
	renderer *handler.Renderer
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(catalog CatalogAPI, renderer *handler.Renderer) *DashboardHandler {
	return &DashboardHandler{
		catalog:  catalog,
		renderer: renderer,
	}
}

// ServeHTTP handles GET /admin
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productCount := 0
	spotlightCount := 0
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Warn("dashboard catalog fetch failed", "error", err)
	} else {
		productCount = len(products)
		spotlightCount = len(domain.SpotlightOnly(products))
	}

	data := BaseTemplateData(r)
	data["ActiveTab"] = "dashboard"
	data["ProductCount"] = productCount
	data["SpotlightCount"] = spotlightCount

	h.renderer.RenderHTTP(w, "admin/dashboard", data)
}
