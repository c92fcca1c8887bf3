package cart

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/dev-star23/Audiophile/internal/domain"
	"github.com/dev-star23/Audiophile/internal/repository/cartstore"
)

// Store owns the cart lines for one browsing context. Lines keep insertion
// order, there is at most one line per item ID, and no line ever has a
// quantity below one. Every mutation writes the full cart back to storage.
type Store struct {
	mu      sync.Mutex
	items   []domain.CartItem
	storage cartstore.Storage
	logger  *log.Logger
}

// New hydrates a Store from storage. Missing or malformed persisted state is
// treated as an empty cart: the error is logged and never reaches the caller.
func New(ctx context.Context, storage cartstore.Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{storage: storage, logger: logger}

	items, err := storage.Load(ctx)
	if err != nil {
		logger.Printf("cart store: load failed, starting empty: %v", err)
		return s
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		s.items = append(s.items, item)
	}
	return s
}

// AddItem merges quantity into an existing line with the same ID, or appends
// a new line. Quantities under one are normalized to one.
func (s *Store) AddItem(ctx context.Context, item domain.CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += quantity
			s.persist(ctx)
			return
		}
	}
	item.Quantity = quantity
	s.items = append(s.items, item)
	s.persist(ctx)
}

// UpdateQuantity replaces a line's quantity in place. A quantity of zero or
// below removes the line entirely.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// RemoveItem drops the matching line. Absent IDs are a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// RemoveAll empties the cart.
func (s *Store) RemoveAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of line quantities, recomputed on every call.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity, recomputed on every call.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// persist writes the full cart to storage. Write failures are logged and
// swallowed: a broken slot must never block cart mutations.
// Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.items); err != nil {
		s.logger.Printf("cart store: save failed: %v", err)
	}
}
