package admin

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/telemetry"
)

// InventoryHandler handles admin variant/stock management
type InventoryHandler struct {
	catalog  CatalogAPI
	renderer *handler.Renderer
}

// NewInventoryHandler creates a new admin inventory handler
func NewInventoryHandler(catalog CatalogAPI, renderer *handler.Renderer) *InventoryHandler {
	return &InventoryHandler{
		catalog:  catalog,
		renderer: renderer,
	}
}

// List handles GET /admin/inventory. Without a product selection it shows
// the product picker; with ?product=<id> it also shows that product's
// variant records and the create/update forms.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := r.URL.Query().Get("product")

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("inventory product list failed", "error", err)
		telemetry.CaptureError(err)
	}

	data := BaseTemplateData(r)
	data["ActiveTab"] = "inventory"
	data["Products"] = products
	data["SelectedProduct"] = (*domain.Product)(nil)
	data["Records"] = []domain.InventoryRecord(nil)
	data["Error"] = firstError(err, r)

	if productID != "" {
		for i := range products {
			if products[i].ID == productID {
				data["SelectedProduct"] = &products[i]
				break
			}
		}

		records, invErr := h.catalog.ListInventory(ctx, productID)
		if invErr != nil {
			middleware.GetLogger(ctx).Warn("inventory fetch failed", "product_id", productID, "error", invErr)
			if data["Error"] == "" {
				data["Error"] = domain.ErrorMessage(invErr)
			}
		}
		data["Records"] = records
	}

	h.renderer.RenderHTTP(w, "admin/inventory", data)
}

// Create handles POST /admin/inventory. The admin's bearer token rides
// along on the create call.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	productID := r.FormValue("product_id")
	variant := strings.TrimSpace(r.FormValue("variant"))
	stock, err := strconv.Atoi(strings.TrimSpace(r.FormValue("stock")))

	returnTo := "/admin/inventory?product=" + url.QueryEscape(productID)

	if variant == "" {
		h.redirectWithError(w, r, returnTo, domain.Invalid("admin.create_inventory", "Variant is required"))
		return
	}
	if err != nil || stock < 0 {
		h.redirectWithError(w, r, returnTo, domain.Invalid("admin.create_inventory", "Stock must be a non-negative number"))
		return
	}

	input := domain.InventoryInput{
		ProductID: productID,
		Variant:   variant,
		Stock:     stock,
	}
	token := middleware.GetSession(ctx).Token

	created, err := h.catalog.CreateInventory(ctx, input, token)
	if err != nil {
		middleware.GetLogger(ctx).Error("inventory create failed", "product_id", productID, "error", err)
		telemetry.CaptureError(err)
		h.redirectWithError(w, r, returnTo, err)
		return
	}

	middleware.GetLogger(ctx).Info("inventory created",
		"inventory_id", created.ID,
		"product_id", productID,
		"variant", variant,
		"stock", stock)
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// UpdateStock handles POST /admin/inventory/{id}/stock
func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	productID := r.FormValue("product_id")
	returnTo := "/admin/inventory?product=" + url.QueryEscape(productID)

	stock, err := strconv.Atoi(strings.TrimSpace(r.FormValue("stock")))
	if err != nil || stock < 0 {
		h.redirectWithError(w, r, returnTo, domain.Invalid("admin.update_stock", "Stock must be a non-negative number"))
		return
	}

	token := middleware.GetSession(ctx).Token
	if _, err := h.catalog.UpdateInventoryStock(ctx, id, stock, token); err != nil {
		middleware.GetLogger(ctx).Error("stock update failed", "inventory_id", id, "error", err)
		telemetry.CaptureError(err)
		h.redirectWithError(w, r, returnTo, err)
		return
	}

	middleware.GetLogger(ctx).Info("stock updated", "inventory_id", id, "stock", stock)
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

func (h *InventoryHandler) redirectWithError(w http.ResponseWriter, r *http.Request, path string, err error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	http.Redirect(w, r, path+sep+"error="+url.QueryEscape(domain.ErrorMessage(err)), http.StatusSeeOther)
}
