package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/dev-star23/Audiophile/internal/domain"
	productrepo "github.com/dev-star23/Audiophile/internal/repository/product"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Apply inserts the audiophile catalog for local development. Idempotent:
// products are upserted by slug.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	repo := productrepo.NewPostgres(pool, logger)

	for _, p := range catalog() {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}
	return nil
}

func catalog() []domain.Product {
	return []domain.Product{
		{
			Slug:        "xx99-mark-two-headphones",
			Category:    domain.CategoryHeadphones,
			Title:       "XX99 MARK II HEADPHONES",
			Description: "The new XX99 Mark II headphones is the pinnacle of pristine audio. It redefines your premium headphone experience by reproducing the balanced depth and precision of studio-quality sound.",
			Price:       2999,
			New:         true,
			Includes: []domain.IncludedItem{
				{Quantity: 1, Item: "Headphone Unit"},
				{Quantity: 2, Item: "Replacement Earcups"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 5m Audio Cable"},
				{Quantity: 1, Item: "Travel Bag"},
			},
			Image: domain.ImageSet{
				Mobile:  "/images/shared/mobile/image-xx99-mark-two-headphones.jpg",
				Tablet:  "/images/shared/tablet/image-xx99-mark-two-headphones.jpg",
				Desktop: "/images/shared/desktop/image-xx99-mark-two-headphones.jpg",
				Alt:     "XX99 Mark II Headphones",
			},
		},
		{
			Slug:        "xx99-mark-one-headphones",
			Category:    domain.CategoryHeadphones,
			Title:       "XX99 MARK I HEADPHONES",
			Description: "As the gold standard for headphones, the classic XX99 Mark I offers detailed and accurate audio reproduction for audiophiles, mixing engineers, and music aficionados alike in studios and on the go.",
			Price:       1750,
			Includes: []domain.IncludedItem{
				{Quantity: 1, Item: "Headphone Unit"},
				{Quantity: 2, Item: "Replacement Earcups"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 5m Audio Cable"},
			},
			Image: domain.ImageSet{
				Mobile:  "/images/shared/mobile/image-xx99-mark-one-headphones.jpg",
				Tablet:  "/images/shared/tablet/image-xx99-mark-one-headphones.jpg",
				Desktop: "/images/shared/desktop/image-xx99-mark-one-headphones.jpg",
				Alt:     "XX99 Mark I Headphones",
			},
		},
		{
			Slug:        "xx59-headphones",
			Category:    domain.CategoryHeadphones,
			Title:       "XX59 HEADPHONES",
			Description: "Enjoy your audio almost anywhere and customize it to your specific tastes with the XX59 headphones. The stylish yet durable versatile wireless headset is a brilliant companion at home or on the move.",
			Price:       899,
			Includes: []domain.IncludedItem{
				{Quantity: 1, Item: "Headphone Unit"},
				{Quantity: 2, Item: "Replacement Earcups"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 5m Audio Cable"},
			},
			Image: domain.ImageSet{
				Mobile:  "/images/shared/mobile/image-xx59-headphones.jpg",
				Tablet:  "/images/shared/tablet/image-xx59-headphones.jpg",
				Desktop: "/images/shared/desktop/image-xx59-headphones.jpg",
				Alt:     "XX59 Headphones",
			},
		},
		{
			Slug:        "zx9-speaker",
			Category:    domain.CategorySpeakers,
			Title:       "ZX9 SPEAKER",
			Description: "Upgrade your sound system with the all new ZX9 active speaker. It's a bookshelf speaker system that offers truly wireless connectivity - creating new possibilities for more pleasing and practical audio setups.",
			Price:       4500,
			New:         true,
			Includes: []domain.IncludedItem{
				{Quantity: 2, Item: "Speaker Unit"},
				{Quantity: 2, Item: "Speaker Cloth Panel"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 10m Audio Cable"},
				{Quantity: 1, Item: "10m Optical Cable"},
			},
			Image: domain.ImageSet{
				Mobile:  "/images/shared/mobile/image-zx9-speaker.jpg",
				Tablet:  "/images/shared/tablet/image-zx9-speaker.jpg",
				Desktop: "/images/shared/desktop/image-zx9-speaker.jpg",
				Alt:     "ZX9 Speaker",
			},
		},
		{
			Slug:        "zx7-speaker",
			Category:    domain.CategorySpeakers,
			Title:       "ZX7 SPEAKER",
			Description: "Stream high quality sound wirelessly with minimal to no loss. The ZX7 speaker uses high-end audiophile components that represents the top of the line powered speakers for home or studio use.",
			Price:       3500,
			Includes: []domain.IncludedItem{
				{Quantity: 2, Item: "Speaker Unit"},
				{Quantity: 2, Item: "Speaker Cloth Panel"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 7.5m Audio Cable"},
				{Quantity: 1, Item: "7.5m Optical Cable"},
			},
			Image: domain.ImageSet{
				Mobile:  "/images/shared/mobile/image-zx7-speaker.jpg",
				Tablet:  "/images/shared/tablet/image-zx7-speaker.jpg",
				Desktop: "/images/shared/desktop/image-zx7-speaker.jpg",
				Alt:     "ZX7 Speaker",
			},
		},
		{
			Slug:        "yx1-earphones",
			Category:    domain.CategoryEarphones,
			Title:       "YX1 WIRELESS EARPHONES",
			Description: "Tailor your listening experience with bespoke dynamic drivers from the new YX1 Wireless Earphones. Enjoy incredible high-fidelity sound even in noisy environments with its active noise cancellation feature.",
			Price:       599,
			New:         true,
			Includes: []domain.IncludedItem{
				{Quantity: 2, Item: "Earphone Unit"},
				{Quantity: 6, Item: "Multi-size Earplugs"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "USB-C Charging Cable"},
				{Quantity: 1, Item: "Travel Pouch"},
			},
			Image: domain.ImageSet{
				Mobile:  "/images/product-yx1-earphones/mobile/image-category-page-preview.jpg",
				Tablet:  "/images/product-yx1-earphones/tablet/image-category-page-preview.jpg",
				Desktop: "/images/product-yx1-earphones/desktop/image-category-page-preview.jpg",
				Alt:     "YX1 Wireless Earphones",
			},
		},
	}
}
