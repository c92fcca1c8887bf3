package recommend

import (
	"context"

	"github.com/dev-star23/Audiophile/internal/domain"
)

// relatedCount is how many "you may also like" items a product page shows.
const relatedCount = 3

// Related picks up to three related products for current, preferring the
// same category and falling back to other categories to fill the remaining
// slots. The result is deterministic and keeps catalog order; the current
// product is always excluded. A catalog with fewer than three eligible
// products yields fewer results, down to none.
func Related(catalog []domain.Product, current domain.Product) []domain.Product {
	var same, other []domain.Product
	for _, p := range catalog {
		if p.Slug == current.Slug {
			continue
		}
		if p.Category == current.Category {
			same = append(same, p)
		} else {
			other = append(other, p)
		}
	}

	if len(same) >= relatedCount {
		return same[:relatedCount]
	}

	picks := same
	needed := relatedCount - len(same)
	if needed > len(other) {
		needed = len(other)
	}
	return append(picks, other[:needed]...)
}

type productRepo interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// Service resolves a product by slug and selects its related products from
// the full catalog. The catalog is fetched fresh per call, never cached.
type Service struct {
	products productRepo
}

func New(products productRepo) *Service {
	return &Service{products: products}
}

// ForSlug returns the related products for the product identified by slug.
// Unknown slugs surface domain.ErrNotFound from the repository.
func (s *Service) ForSlug(ctx context.Context, slug string) ([]domain.Product, error) {
	current, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	catalog, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Related(catalog, *current), nil
}
