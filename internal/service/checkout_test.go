package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridewear/stride/internal/cartstore"
	"github.com/stridewear/stride/internal/clientstate"
	"github.com/stridewear/stride/internal/domain"
)

// mockOrderAPI records calls and returns a canned response.
type mockOrderAPI struct {
	calls    int
	gotCart  domain.Cart
	gotToken string
	conf     *domain.OrderConfirmation
	err      error
}

func (m *mockOrderAPI) PlaceOrder(ctx context.Context, cart domain.Cart, token string) (*domain.OrderConfirmation, error) {
	m.calls++
	m.gotCart = cart
	m.gotToken = token
	if m.err != nil {
		return nil, m.err
	}
	return m.conf, nil
}

func seededStore(t *testing.T) *cartstore.Store {
	t.Helper()
	store := cartstore.New(clientstate.NewMemory())
	err := store.Save(domain.Cart{
		{ProductID: "p1", Name: "Trail Runner", Price: decimal.NewFromInt(130), Variant: "US 9", Quantity: 1},
		{ProductID: "p2", Name: "Road Racer", Price: decimal.NewFromInt(95), Variant: "US 10", Quantity: 2},
	})
	require.NoError(t, err)
	return store
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	loggedIn := domain.Session{Token: "tok123", Role: "CUSTOMER"}

	t.Run("empty cart short-circuits before any network call", func(t *testing.T) {
		store := cartstore.New(clientstate.NewMemory())
		api := &mockOrderAPI{}
		svc := NewCheckoutService(api, discardLogger())

		_, err := svc.PlaceOrder(context.Background(), store, loggedIn)
		assert.ErrorIs(t, err, domain.ErrCartEmpty)
		assert.Zero(t, api.calls)
	})

	t.Run("missing token short-circuits before any network call", func(t *testing.T) {
		store := seededStore(t)
		api := &mockOrderAPI{}
		svc := NewCheckoutService(api, discardLogger())

		_, err := svc.PlaceOrder(context.Background(), store, domain.Session{})
		assert.ErrorIs(t, err, domain.ErrLoginRequired)
		assert.Zero(t, api.calls)
		assert.Len(t, store.Load(), 2, "cart must survive a blocked checkout")
	})

	t.Run("submits full cart once and clears it on success", func(t *testing.T) {
		store := seededStore(t)
		api := &mockOrderAPI{conf: &domain.OrderConfirmation{ID: "ord1", Status: "PLACED"}}
		svc := NewCheckoutService(api, discardLogger())

		conf, err := svc.PlaceOrder(context.Background(), store, loggedIn)
		require.NoError(t, err)
		assert.Equal(t, "ord1", conf.ID)
		assert.Equal(t, 1, api.calls)
		assert.Equal(t, "tok123", api.gotToken)
		require.Len(t, api.gotCart, 2)
		assert.Equal(t, "p1", api.gotCart[0].ProductID)
		assert.Empty(t, store.Load(), "cart must be cleared after a placed order")
	})

	t.Run("rejected submission leaves the cart intact", func(t *testing.T) {
		store := seededStore(t)
		api := &mockOrderAPI{err: domain.Rejected("orders.place_order", "Insufficient stock for US 9")}
		svc := NewCheckoutService(api, discardLogger())

		_, err := svc.PlaceOrder(context.Background(), store, loggedIn)
		require.Error(t, err)
		assert.Equal(t, "Insufficient stock for US 9", domain.ErrorMessage(err))
		assert.Len(t, store.Load(), 2)
	})

	t.Run("unreachable service leaves the cart intact", func(t *testing.T) {
		store := seededStore(t)
		api := &mockOrderAPI{err: domain.Unavailable(context.DeadlineExceeded, "orders.place_order", "catalog service unreachable")}
		svc := NewCheckoutService(api, discardLogger())

		_, err := svc.PlaceOrder(context.Background(), store, loggedIn)
		assert.True(t, domain.IsCode(err, domain.EUNAVAILABLE))
		assert.Len(t, store.Load(), 2)
	})
}
