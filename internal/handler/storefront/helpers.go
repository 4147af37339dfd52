// Package storefront holds the customer-facing page handlers: home,
// category browsing, product detail, cart, checkout, and login.
package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/stridewear/stride/internal/cartstore"
	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/middleware"
)

// CatalogAPI is the slice of the catalog client the storefront reads from.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListInventory(ctx context.Context, productID string) ([]domain.InventoryRecord, error)
}

// BaseTemplateData returns common data for all storefront templates
func BaseTemplateData(r *http.Request) map[string]interface{} {
	data := map[string]interface{}{
		"Year": time.Now().Year(),
	}

	sess := middleware.GetSession(r.Context())
	data["LoggedIn"] = sess.LoggedIn()
	data["IsAdmin"] = sess.IsAdmin()

	if kv := middleware.GetKV(r.Context()); kv != nil {
		data["CartCount"] = cartstore.New(kv).Load().ItemCount()
	} else {
		data["CartCount"] = 0
	}

	return data
}

// requestStore returns the cart store bound to this request's client state.
// Returns nil outside the WithClientState chain.
func requestStore(r *http.Request) *cartstore.Store {
	kv := middleware.GetKV(r.Context())
	if kv == nil {
		return nil
	}
	return cartstore.New(kv)
}
