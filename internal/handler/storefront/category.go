package storefront

import (
	"net/http"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/telemetry"
)

// CategoryHandler handles category browse pages
type CategoryHandler struct {
	catalog  CatalogAPI
	renderer *handler.Renderer
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(catalog CatalogAPI, renderer *handler.Renderer) *CategoryHandler {
	return &CategoryHandler{
		catalog:  catalog,
		renderer: renderer,
	}
}

// ServeHTTP handles GET /category/{name}. Category matching is
// case-insensitive and whitespace-tolerant; the filter runs here because
// the catalog service has no category endpoint.
func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	var matched []domain.Product
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Warn("category catalog fetch failed", "category", name, "error", err)
		telemetry.CaptureError(err)
	} else {
		matched = domain.FilterByCategory(products, name)
	}

	data := BaseTemplateData(r)
	data["Category"] = name
	data["Products"] = matched

	h.renderer.RenderHTTP(w, "category", data)
}
