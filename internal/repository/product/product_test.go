package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dev-star23/Audiophile/internal/domain"
	"github.com/dev-star23/Audiophile/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_GetAllAndGetBySlug(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	first, err := repo.Upsert(ctx, domain.Product{
		Slug:     "zx9-speaker",
		Category: domain.CategorySpeakers,
		Title:    "ZX9 SPEAKER",
		Price:    4500,
		New:      true,
		Includes: []domain.IncludedItem{{Quantity: 2, Item: "Speaker Unit"}},
		Image:    domain.ImageSet{Desktop: "/images/shared/desktop/image-zx9-speaker.jpg", Alt: "ZX9 Speaker"},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := repo.Upsert(ctx, domain.Product{
		Slug:     "zx7-speaker",
		Category: domain.CategorySpeakers,
		Title:    "ZX7 SPEAKER",
		Price:    3500,
		Image:    domain.ImageSet{Desktop: "/images/shared/desktop/image-zx7-speaker.jpg"},
	}); err != nil {
		t.Fatalf("Upsert second: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 || all[0].Slug != "zx9-speaker" {
		t.Fatalf("expected catalog order [zx9 zx7], got %+v", all)
	}

	got, err := repo.GetBySlug(ctx, "zx9-speaker")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != first.ID || got.Price != 4500 || !got.New {
		t.Fatalf("unexpected product %+v", got)
	}
	if len(got.Includes) != 1 || got.Includes[0].Item != "Speaker Unit" {
		t.Fatalf("includes not round-tripped: %+v", got.Includes)
	}
	if got.Image.Alt != "ZX9 Speaker" {
		t.Fatalf("image not round-tripped: %+v", got.Image)
	}
}

func TestPostgres_GetByCategory(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	seedSlugs := []struct {
		slug     string
		category domain.Category
	}{
		{"xx59-headphones", domain.CategoryHeadphones},
		{"zx7-speaker", domain.CategorySpeakers},
		{"xx99-mark-one-headphones", domain.CategoryHeadphones},
	}
	for _, s := range seedSlugs {
		if _, err := repo.Upsert(ctx, domain.Product{
			Slug:     s.slug,
			Category: s.category,
			Title:    s.slug,
			Price:    100,
			Image:    domain.ImageSet{Desktop: "/img.jpg"},
		}); err != nil {
			t.Fatalf("Upsert %s: %v", s.slug, err)
		}
	}

	headphones, err := repo.GetByCategory(ctx, domain.CategoryHeadphones)
	if err != nil {
		t.Fatalf("GetByCategory: %v", err)
	}
	if len(headphones) != 2 || headphones[0].Slug != "xx59-headphones" {
		t.Fatalf("unexpected headphones %+v", headphones)
	}
}

func TestPostgres_GetBySlugNotFound(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	_, err := repo.GetBySlug(ctx, "no-such-product")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set; skipping postgres integration test")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE products RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
