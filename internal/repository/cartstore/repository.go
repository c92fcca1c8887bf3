package cartstore

import (
	"context"

	"github.com/dev-star23/Audiophile/internal/domain"
)

// Storage is the durable slot holding the serialized cart for one browsing
// context. Load returns a nil slice when nothing has been persisted yet.
// Concurrent writers race with last-write-wins semantics; no locking across
// processes is attempted.
type Storage interface {
	Load(ctx context.Context) ([]domain.CartItem, error)
	Save(ctx context.Context, items []domain.CartItem) error
}
