package storefront

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/service"
	"github.com/stridewear/stride/internal/telemetry"
)

// CartHandler handles the cart page, clearing, and checkout submission
type CartHandler struct {
	checkout *service.CheckoutService
	renderer *handler.Renderer
}

// NewCartHandler creates a new cart handler
func NewCartHandler(checkout *service.CheckoutService, renderer *handler.Renderer) *CartHandler {
	return &CartHandler{
		checkout: checkout,
		renderer: renderer,
	}
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	store := requestStore(r)
	if store == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	cart := store.Load()

	data := BaseTemplateData(r)
	data["Cart"] = cart
	data["Total"] = cart.Total()
	data["Error"] = r.URL.Query().Get("error")
	data["Placed"] = r.URL.Query().Get("placed") == "1"

	h.renderer.RenderHTTP(w, "cart", data)
}

// Clear handles POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store := requestStore(r)
	if store == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	store.Clear()
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Checkout handles POST /checkout. A checkout without a login credential
// goes to the login page; every other failure returns to the cart with the
// message attached and the cart contents untouched.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	store := requestStore(r)
	if store == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	sess := middleware.GetSession(ctx)

	conf, err := h.checkout.PlaceOrder(ctx, store, sess)
	if err != nil {
		if errors.Is(err, domain.ErrLoginRequired) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if domain.IsCode(err, domain.EUNAVAILABLE) || domain.IsCode(err, domain.EINTERNAL) {
			middleware.GetLogger(ctx).Error("checkout failed", "error", err)
			telemetry.CaptureError(err)
		}
		q := url.Values{}
		q.Set("error", domain.ErrorMessage(err))
		http.Redirect(w, r, "/cart?"+q.Encode(), http.StatusSeeOther)
		return
	}

	middleware.GetLogger(ctx).Info("checkout complete", "order_id", conf.ID)
	http.Redirect(w, r, "/cart?placed=1", http.StatusSeeOther)
}
