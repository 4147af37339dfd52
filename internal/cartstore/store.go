// Package cartstore owns the durable representation of the shopping cart in
// client storage: pure load/save/clear over a key/value store, no network.
package cartstore

import (
	"encoding/json"

	"github.com/stridewear/stride/internal/clientstate"
	"github.com/stridewear/stride/internal/domain"
)

// Store reads and writes the serialized cart. The backing KV holds exactly
// one cart per client scope and every write is a full replacement.
type Store struct {
	kv clientstate.KV
}

// New creates a cart store over the given client-state KV.
func New(kv clientstate.KV) *Store {
	return &Store{kv: kv}
}

// Load returns the persisted cart. Absent, malformed, or non-sequence data
// yields an empty cart; corrupt storage is a recoverable condition, never a
// fatal one.
func (s *Store) Load() domain.Cart {
	raw, ok := s.kv.Get(clientstate.KeyCart)
	if !ok {
		return domain.Cart{}
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return domain.Cart{}
	}
	if cart == nil {
		return domain.Cart{}
	}
	return cart
}

// Save overwrites the stored cart, replacing any prior value.
func (s *Store) Save(cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return domain.Internal(err, "cartstore.save", "failed to serialize cart")
	}
	s.kv.Set(clientstate.KeyCart, string(raw))
	return nil
}

// Clear removes the stored cart entirely.
func (s *Store) Clear() {
	s.kv.Delete(clientstate.KeyCart)
}
