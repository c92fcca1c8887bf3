package domain

// CartItem is one product-quantity line held in the cart. ID is stable per
// product variant; at most one line per ID exists in a cart at any time.
// The JSON shape doubles as the persisted-storage record.
type CartItem struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
	ImageAlt string `json:"imageAlt"`
}
