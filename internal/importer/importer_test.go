package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/dev-star23/Audiophile/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

const catalogJSON = `[
  {
    "slug": "yx1-earphones",
    "name": "YX1 Wireless Earphones",
    "category": "earphones",
    "new": true,
    "price": 599,
    "description": "Tailor your listening experience.",
    "features": "Experience unrivalled stereo sound.",
    "includes": [
      {"quantity": 2, "item": "Earphone Unit"},
      {"quantity": 6, "item": "Multi-size Earplugs"}
    ],
    "image": {
      "mobile": "./assets/product-yx1-earphones/mobile/image-product.jpg",
      "tablet": "./assets/product-yx1-earphones/tablet/image-product.jpg",
      "desktop": "./assets/product-yx1-earphones/desktop/image-product.jpg"
    },
    "gallery": {
      "first": {"desktop": "./assets/product-yx1-earphones/desktop/image-gallery-1.jpg"},
      "second": {"desktop": "./assets/product-yx1-earphones/desktop/image-gallery-2.jpg"},
      "third": {"desktop": "./assets/product-yx1-earphones/desktop/image-gallery-3.jpg"}
    }
  },
  {
    "slug": "zx7-speaker",
    "name": "ZX7 Speaker",
    "category": "speakers",
    "new": false,
    "price": 3500,
    "description": "Stream high quality sound wirelessly.",
    "includes": [],
    "image": {"desktop": "./assets/product-zx7-speaker/desktop/image-product.jpg"},
    "gallery": {}
  }
]`

func TestJSONImporter_Run(t *testing.T) {
	repo := &stubProductRepo{}
	imp := NewJSONImporter(strings.NewReader(catalogJSON), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 2 || len(repo.items) != 2 {
		t.Fatalf("expected 2 imported products, got count=%d items=%d", count, len(repo.items))
	}

	yx1 := repo.items[0]
	if yx1.Slug != "yx1-earphones" || yx1.Category != domain.CategoryEarphones || !yx1.New {
		t.Fatalf("unexpected first product %+v", yx1)
	}
	if len(yx1.Includes) != 2 || yx1.Includes[1].Quantity != 6 {
		t.Fatalf("includes not mapped: %+v", yx1.Includes)
	}
	if len(yx1.Gallery) != 3 || !strings.Contains(yx1.Gallery[2].Desktop, "gallery-3") {
		t.Fatalf("gallery not mapped in display order: %+v", yx1.Gallery)
	}
	if yx1.Image.Alt != "YX1 Wireless Earphones" {
		t.Fatalf("image alt should default to the product name, got %q", yx1.Image.Alt)
	}
}

func TestJSONImporter_InvalidCategoryAborts(t *testing.T) {
	bad := `[{"slug":"s","name":"N","category":"turntables","price":100}]`
	imp := NewJSONImporter(strings.NewReader(bad), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestJSONImporter_MalformedJSON(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader("{not json"), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestJSONImporter_MissingSlugAborts(t *testing.T) {
	bad := `[{"slug":"","name":"N","category":"speakers","price":100}]`
	imp := NewJSONImporter(strings.NewReader(bad), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing slug")
	}
}
