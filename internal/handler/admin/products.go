package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/telemetry"
)

// ProductHandler handles admin product CRUD
type ProductHandler struct {
	catalog  CatalogAPI
	renderer *handler.Renderer
}

// NewProductHandler creates a new admin product handler
func NewProductHandler(catalog CatalogAPI, renderer *handler.Renderer) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		renderer: renderer,
	}
}

// List handles GET /admin/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("admin product list failed", "error", err)
		telemetry.CaptureError(err)
	}

	data := BaseTemplateData(r)
	data["ActiveTab"] = "products"
	data["Products"] = products
	data["Error"] = firstError(err, r)

	h.renderer.RenderHTTP(w, "admin/products", data)
}

// New handles GET /admin/products/new
func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	data := BaseTemplateData(r)
	data["ActiveTab"] = "products"
	data["Product"] = &domain.Product{}
	data["IsNew"] = true
	data["Error"] = r.URL.Query().Get("error")

	h.renderer.RenderHTTP(w, "admin/product_form", data)
}

// Create handles POST /admin/products/new
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, err := parseProductForm(r)
	if err != nil {
		h.redirectWithError(w, r, "/admin/products/new", err)
		return
	}

	created, err := h.catalog.CreateProduct(ctx, input)
	if err != nil {
		middleware.GetLogger(ctx).Error("product create failed", "error", err)
		telemetry.CaptureError(err)
		h.redirectWithError(w, r, "/admin/products/new", err)
		return
	}

	middleware.GetLogger(ctx).Info("product created", "product_id", created.ID, "name", created.Name)
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// Edit handles GET /admin/products/{id}/edit
func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		middleware.GetLogger(ctx).Error("product fetch failed", "product_id", id, "error", err)
		http.Error(w, domain.ErrorMessage(err), http.StatusServiceUnavailable)
		return
	}

	data := BaseTemplateData(r)
	data["ActiveTab"] = "products"
	data["Product"] = product
	data["IsNew"] = false
	data["Error"] = r.URL.Query().Get("error")

	h.renderer.RenderHTTP(w, "admin/product_form", data)
}

// Update handles POST /admin/products/{id}/edit
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	input, err := parseProductForm(r)
	if err != nil {
		h.redirectWithError(w, r, "/admin/products/"+id+"/edit", err)
		return
	}

	if _, err := h.catalog.UpdateProduct(ctx, id, input); err != nil {
		middleware.GetLogger(ctx).Error("product update failed", "product_id", id, "error", err)
		telemetry.CaptureError(err)
		h.redirectWithError(w, r, "/admin/products/"+id+"/edit", err)
		return
	}

	middleware.GetLogger(ctx).Info("product updated", "product_id", id)
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// Delete handles POST /admin/products/{id}/delete
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.catalog.DeleteProduct(ctx, id); err != nil {
		middleware.GetLogger(ctx).Error("product delete failed", "product_id", id, "error", err)
		telemetry.CaptureError(err)
		h.redirectWithError(w, r, "/admin/products", err)
		return
	}

	middleware.GetLogger(ctx).Info("product deleted", "product_id", id)
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *ProductHandler) redirectWithError(w http.ResponseWriter, r *http.Request, path string, err error) {
	q := url.Values{}
	q.Set("error", domain.ErrorMessage(err))
	http.Redirect(w, r, path+"?"+q.Encode(), http.StatusSeeOther)
}

// parseProductForm validates and converts the product form fields.
func parseProductForm(r *http.Request) (domain.ProductInput, error) {
	var input domain.ProductInput

	if err := r.ParseForm(); err != nil {
		return input, domain.Invalid("admin.parse_product_form", "Invalid form data")
	}

	input.Name = strings.TrimSpace(r.FormValue("name"))
	input.Category = strings.TrimSpace(r.FormValue("category"))
	input.Spotlight = r.FormValue("spotlight") == "on"

	if input.Name == "" {
		return input, domain.Invalid("admin.parse_product_form", "Name is required")
	}
	if input.Category == "" {
		return input, domain.Invalid("admin.parse_product_form", "Category is required")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("price")))
	if err != nil || price.IsNegative() {
		return input, domain.Invalid("admin.parse_product_form", "Price must be a non-negative number")
	}
	input.Price = price

	for _, img := range strings.Split(r.FormValue("images"), "\n") {
		if img = strings.TrimSpace(img); img != "" {
			input.Images = append(input.Images, img)
		}
	}

	return input, nil
}

// firstError prefers a live fetch error over a flash message from the query.
func firstError(err error, r *http.Request) string {
	if err != nil {
		return domain.ErrorMessage(err)
	}
	return r.URL.Query().Get("error")
}
