// Package service holds the application workflows that sit between the HTTP
// handlers and the catalog client: cart assembly, checkout submission, and
// the session lifecycle. Services are stateless; per-client state arrives as
// a cart store or KV parameter because it lives in request-scoped cookies.
package service

import (
	"log/slog"

	"github.com/stridewear/stride/internal/cartstore"
	"github.com/stridewear/stride/internal/domain"
)

// CartService assembles line items from product and inventory data and
// appends them to the persisted cart.
type CartService struct {
	logger *slog.Logger
}

// NewCartService creates a cart service.
func NewCartService(logger *slog.Logger) *CartService {
	return &CartService{logger: logger}
}

// SelectVariant returns the stock count observed for the given variant
// label, or 0 when the label is empty or matches no record. The count is
// advisory: it drives display only, and a stale or zero count does not block
// adding to the cart. Authoritative stock checks happen at order placement.
func (s *CartService) SelectVariant(inventory []domain.InventoryRecord, label string) int {
	if label == "" {
		return 0
	}
	for _, rec := range inventory {
		if rec.Variant == label {
			return rec.Stock
		}
	}
	return 0
}

// AddLineItem builds a line item from the product snapshot and appends it to
// the stored cart. The add always appends a new entry, even when an
// identical (product, variant) line already exists, and it never consults
// stock. Quantity must be at least 1 and a variant must be chosen.
func (s *CartService) AddLineItem(store *cartstore.Store, product *domain.Product, variant string, quantity int) (*domain.LineItem, error) {
	if product == nil {
		return nil, domain.ErrNoProduct
	}
	if variant == "" {
		return nil, domain.NewValidationError("cart.add_line_item", "variant", "Please select a size")
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	item := domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Variant:   variant,
		Quantity:  quantity,
	}

	cart := store.Load()
	cart = append(cart, item)
	if err := store.Save(cart); err != nil {
		return nil, err
	}

	s.logger.Info("line item added",
		"product_id", item.ProductID,
		"variant", item.Variant,
		"quantity", item.Quantity,
		"cart_size", len(cart))
	return &item, nil
}
