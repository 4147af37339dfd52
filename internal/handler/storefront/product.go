package storefront

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/service"
	"github.com/stridewear/stride/internal/telemetry"
)

// ProductHandler handles the product detail page and cart additions
type ProductHandler struct {
	catalog  CatalogAPI
	cart     *service.CartService
	renderer *handler.Renderer
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog CatalogAPI, cart *service.CartService, renderer *handler.Renderer) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		cart:     cart,
		renderer: renderer,
	}
}

// VariantOption is one selectable variant on the product page
type VariantOption struct {
	Value    string
	Label    string
	Selected bool
}

// Detail handles GET /product/{id}. Product and inventory load
// concurrently; a failed inventory fetch leaves the page purchasable with
// no variant list rather than failing the whole page.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var (
		wg        sync.WaitGroup
		product   *domain.Product
		inventory []domain.InventoryRecord
		prodErr   error
		invErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		product, prodErr = h.catalog.GetProduct(ctx, id)
	}()
	go func() {
		defer wg.Done()
		inventory, invErr = h.catalog.ListInventory(ctx, id)
	}()
	wg.Wait()

	if prodErr != nil {
		if domain.IsCode(prodErr, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		middleware.GetLogger(ctx).Error("product fetch failed", "product_id", id, "error", prodErr)
		telemetry.CaptureError(prodErr)
		http.Error(w, domain.ErrorMessage(prodErr), http.StatusServiceUnavailable)
		return
	}
	if invErr != nil {
		middleware.GetLogger(ctx).Warn("inventory fetch failed", "product_id", id, "error", invErr)
		inventory = nil
	}

	selected := r.URL.Query().Get("variant")
	options := make([]VariantOption, 0, len(inventory))
	for _, rec := range inventory {
		options = append(options, VariantOption{
			Value:    rec.Variant,
			Label:    fmt.Sprintf("%s (%d left)", rec.Variant, rec.Stock),
			Selected: rec.Variant == selected,
		})
	}

	data := BaseTemplateData(r)
	data["Product"] = product
	data["Variants"] = options
	data["SelectedVariant"] = selected
	data["SelectedStock"] = h.cart.SelectVariant(inventory, selected)
	data["Error"] = r.URL.Query().Get("error")

	h.renderer.RenderHTTP(w, "product", data)
}

// Add handles POST /cart/add. The submitted quantity is not checked against
// stock; displayed counts are advisory and the order endpoint has the final
// say. Success redirects to the cart, failure back to the product page with
// the message attached.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	productID := r.FormValue("product_id")
	variant := r.FormValue("variant")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		quantity = 0
	}

	store := requestStore(r)
	if store == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	product, err := h.catalog.GetProduct(ctx, productID)
	if err != nil {
		middleware.GetLogger(ctx).Error("cart add product fetch failed", "product_id", productID, "error", err)
		telemetry.CaptureError(err)
		h.redirectBack(w, r, productID, variant, domain.ErrorMessage(err))
		return
	}

	if _, err := h.cart.AddLineItem(store, product, variant, quantity); err != nil {
		h.redirectBack(w, r, productID, variant, errorText(err))
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *ProductHandler) redirectBack(w http.ResponseWriter, r *http.Request, productID, variant, message string) {
	q := url.Values{}
	if variant != "" {
		q.Set("variant", variant)
	}
	q.Set("error", message)
	http.Redirect(w, r, "/product/"+productID+"?"+q.Encode(), http.StatusSeeOther)
}

// errorText flattens validation errors into a single display message.
func errorText(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, msg := range ve.Fields {
			return msg
		}
	}
	return domain.ErrorMessage(err)
}
