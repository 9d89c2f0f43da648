// Package cart maintains the authoritative line-item collection for the
// active session: in-memory, mirrored write-through to durable storage
// after every mutation.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kovawear/kova/internal/domain"
	"github.com/kovawear/kova/internal/storage"
)

// KV is the slice of the durable store the cart needs.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Store owns the cart lines. Lines are identified by (product id, size);
// quantity never drops below 1 except by explicit removal.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
	kv    KV
}

// New builds a store rehydrated from the persisted snapshot. A missing or
// unreadable snapshot yields an empty cart.
func New(kv KV) *Store {
	s := &Store{kv: kv}
	raw, err := kv.Get(storage.KeyCart)
	if err != nil {
		log.Warn().Err(err).Msg("cart: load snapshot")
		return s
	}
	if raw == "" {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
		log.Warn().Err(err).Msg("cart: decode snapshot")
		s.items = nil
	}
	return s
}

// persist rewrites the snapshot. Fire-and-forget: storage is assumed
// reliable within a session, failures are only logged.
func (s *Store) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		log.Warn().Err(err).Msg("cart: encode snapshot")
		return
	}
	if err := s.kv.Set(storage.KeyCart, string(raw)); err != nil {
		log.Warn().Err(err).Msg("cart: write snapshot")
	}
}

func (s *Store) find(key domain.LineKey) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// Add appends a new line with quantity 1, or increments the matching line.
// The caller is responsible for ensuring size is one of product.Sizes.
func (s *Store) Add(product domain.Product, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{ID: product.ID, Size: size}
	if i := s.find(key); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, domain.CartItem{Product: product, Quantity: 1, Size: size})
	}
	s.persist()
}

// Increase increments the matching line by 1. No-op if no line matches.
func (s *Store) Increase(id int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(domain.LineKey{ID: id, Size: size}); i >= 0 {
		s.items[i].Quantity++
		s.persist()
	}
}

// Decrease decrements the matching line by 1, floored at 1. It never
// removes a line. No-op if no line matches.
func (s *Store) Decrease(id int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(domain.LineKey{ID: id, Size: size}); i >= 0 {
		if s.items[i].Quantity > 1 {
			s.items[i].Quantity--
		}
		s.persist()
	}
}

// Remove deletes the matching line entirely. No-op if no line matches.
func (s *Store) Remove(id int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(domain.LineKey{ID: id, Size: size}); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.persist()
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a snapshot copy of the current lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// TotalPrice is the sum of price*quantity over all lines, recomputed on
// every call.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// Count is the sum of quantities over all lines, recomputed on every call.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}
