package service

import (
	"context"
	"log/slog"

	"github.com/stridewear/stride/internal/cartstore"
	"github.com/stridewear/stride/internal/domain"
)

// OrderAPI is the slice of the catalog client checkout needs.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, cart domain.Cart, token string) (*domain.OrderConfirmation, error)
}

// CheckoutService submits the persisted cart as an order.
type CheckoutService struct {
	orders OrderAPI
	logger *slog.Logger
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(orders OrderAPI, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{orders: orders, logger: logger}
}

// PlaceOrder submits the stored cart in one order-creation call and clears
// the cart on success. Two preconditions short-circuit before any network
// activity: an empty cart returns ErrCartEmpty, and a session without a
// token returns ErrLoginRequired. A rejected or unreachable submission
// leaves the cart intact so the client can retry.
func (s *CheckoutService) PlaceOrder(ctx context.Context, store *cartstore.Store, session domain.Session) (*domain.OrderConfirmation, error) {
	cart := store.Load()
	if len(cart) == 0 {
		return nil, domain.ErrCartEmpty
	}
	if !session.LoggedIn() {
		return nil, domain.ErrLoginRequired
	}

	conf, err := s.orders.PlaceOrder(ctx, cart, session.Token)
	if err != nil {
		s.logger.Warn("order submission failed",
			"items", len(cart),
			"error", err)
		return nil, err
	}

	store.Clear()
	s.logger.Info("order placed",
		"order_id", conf.ID,
		"items", len(cart),
		"total", cart.Total())
	return conf, nil
}
