package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dev-star23/Audiophile/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter reads an audiophile catalog export (the data.json shape the
// storefront ships with) and upserts its products.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

// jsonProduct mirrors the export file's product records.
type jsonProduct struct {
	Slug        string               `json:"slug"`
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	New         bool                 `json:"new"`
	Price       int64                `json:"price"`
	Description string               `json:"description"`
	Features    string               `json:"features"`
	Includes    []jsonIncluded       `json:"includes"`
	Image       jsonImage            `json:"image"`
	Gallery     map[string]jsonImage `json:"gallery"`
}

type jsonIncluded struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}

type jsonImage struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
}

// Run parses the export and upserts every product, returning how many were
// imported. The first invalid record aborts the run.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var records []jsonProduct
	dec := json.NewDecoder(i.reader)
	if err := dec.Decode(&records); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	imported := 0
	for _, rec := range records {
		p, err := toProduct(rec)
		if err != nil {
			return imported, err
		}
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.Slug, err)
		}
		imported++
	}
	return imported, nil
}

func toProduct(rec jsonProduct) (domain.Product, error) {
	if strings.TrimSpace(rec.Slug) == "" || strings.TrimSpace(rec.Name) == "" {
		return domain.Product{}, fmt.Errorf("invalid product record (missing slug or name) for slug %q", rec.Slug)
	}
	category := domain.Category(rec.Category)
	if !category.Valid() {
		return domain.Product{}, fmt.Errorf("invalid category %q for slug %q", rec.Category, rec.Slug)
	}
	if rec.Price <= 0 {
		return domain.Product{}, fmt.Errorf("invalid price %d for slug %q", rec.Price, rec.Slug)
	}

	includes := make([]domain.IncludedItem, 0, len(rec.Includes))
	for _, inc := range rec.Includes {
		includes = append(includes, domain.IncludedItem{Quantity: inc.Quantity, Item: inc.Item})
	}

	// Gallery keys are "first"/"second"/"third"; keep that display order.
	var gallery []domain.ImageSet
	for _, key := range []string{"first", "second", "third"} {
		if img, ok := rec.Gallery[key]; ok {
			gallery = append(gallery, domain.ImageSet{
				Mobile:  img.Mobile,
				Tablet:  img.Tablet,
				Desktop: img.Desktop,
			})
		}
	}

	return domain.Product{
		Slug:        rec.Slug,
		Category:    category,
		Title:       rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		New:         rec.New,
		Features:    rec.Features,
		Includes:    includes,
		Image: domain.ImageSet{
			Mobile:  rec.Image.Mobile,
			Tablet:  rec.Image.Tablet,
			Desktop: rec.Image.Desktop,
			Alt:     rec.Name,
		},
		Gallery: gallery,
	}, nil
}
