package domain

import "time"

type Product struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	Category    Category       `json:"category"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Price       int64          `json:"price"`
	New         bool           `json:"new"`
	Features    string         `json:"features,omitempty"`
	Includes    []IncludedItem `json:"includes,omitempty"`
	Image       ImageSet       `json:"image"`
	Gallery     []ImageSet     `json:"gallery,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// IncludedItem is one "in the box" line on a product page.
type IncludedItem struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}

// ImageSet holds the responsive variants of a single product image.
type ImageSet struct {
	Mobile  string `json:"mobile,omitempty"`
	Tablet  string `json:"tablet,omitempty"`
	Desktop string `json:"desktop"`
	Alt     string `json:"alt,omitempty"`
}
