package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/dev-star23/Audiophile/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, slug, category, title, COALESCE(description, ''), price, is_new, COALESCE(features, ''), includes, image, gallery, created_at`

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: get all error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result, err := scanProducts(rows)
	if err != nil {
		r.logger.Printf("product repo: get all rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: get all count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE slug = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, slug).Scan(
		&p.ID, &p.Slug, &p.Category, &p.Title, &p.Description, &p.Price,
		&p.New, &p.Features, &p.Includes, &p.Image, &p.Gallery, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get slug=%s not found", slug)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get slug=%s error=%v", slug, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) GetByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE category = $1
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q, string(category))
	if err != nil {
		r.logger.Printf("product repo: get category=%s error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	result, err := scanProducts(rows)
	if err != nil {
		r.logger.Printf("product repo: get category=%s rows error=%v", category, err)
		return nil, err
	}
	r.logger.Printf("product repo: get category=%s count=%d", category, len(result))
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (slug, category, title, description, price, is_new, features, includes, image, gallery)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, $9, $10)
ON CONFLICT (slug) DO UPDATE SET
    category = EXCLUDED.category,
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    is_new = EXCLUDED.is_new,
    features = EXCLUDED.features,
    includes = EXCLUDED.includes,
    image = EXCLUDED.image,
    gallery = EXCLUDED.gallery
RETURNING id::text, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.Slug,
		string(product.Category),
		product.Title,
		product.Description,
		product.Price,
		product.New,
		product.Features,
		product.Includes,
		product.Image,
		product.Gallery,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert slug=%s error=%v", product.Slug, err)
		return nil, err
	}
	return &res, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Category, &p.Title, &p.Description, &p.Price,
			&p.New, &p.Features, &p.Includes, &p.Image, &p.Gallery, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
