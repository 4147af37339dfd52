package storefront

import (
	"net/http"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/telemetry"
)

// HomeHandler handles the storefront homepage
type HomeHandler struct {
	catalog  CatalogAPI
	renderer *handler.Renderer
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(catalog CatalogAPI, renderer *handler.Renderer) *HomeHandler {
	return &HomeHandler{
		catalog:  catalog,
		renderer: renderer,
	}
}

// ServeHTTP handles GET /. The homepage shows the spotlight subset of the
// catalog; a failed fetch degrades to an empty page rather than an error.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var spotlight []domain.Product
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Warn("homepage catalog fetch failed", "error", err)
		telemetry.CaptureError(err)
	} else {
		spotlight = domain.SpotlightOnly(products)
	}

	data := BaseTemplateData(r)
	data["Products"] = spotlight

	h.renderer.RenderHTTP(w, "home", data)
}
