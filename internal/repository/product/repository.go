package product

import (
	"context"

	"github.com/dev-star23/Audiophile/internal/domain"
)

// Repository is the read-only product catalog consumed by the storefront
// core. Catalog order is creation order and every method returns products in
// that order. Upsert exists for the seed and importer tools only.
type Repository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
