package cartstore

import (
	"context"
	"sync"

	"github.com/dev-star23/Audiophile/internal/domain"
)

type memoryStorage struct {
	mu    sync.Mutex
	items []domain.CartItem
}

// NewMemory returns an in-memory Storage. Useful for tests and for running
// the API without any durable cart slot configured.
func NewMemory() Storage {
	return &memoryStorage{}
}

func (s *memoryStorage) Load(_ context.Context) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		return nil, nil
	}
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memoryStorage) Save(_ context.Context, items []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]domain.CartItem, len(items))
	copy(s.items, items)
	return nil
}
