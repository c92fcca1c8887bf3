package domain

import "time"

// OrderTotals is the computed price breakdown for a checkout. VAT is already
// included in item prices, so GrandTotal = Subtotal + Shipping and the VAT
// figure is informational only.
type OrderTotals struct {
	Subtotal   int64 `json:"subtotal"`
	Shipping   int64 `json:"shipping"`
	VAT        int64 `json:"vat"`
	GrandTotal int64 `json:"grandTotal"`
}

// Order is the immutable snapshot built at submission time. It is never
// persisted: it either becomes a confirmation shown to the user or is
// discarded when the submission attempt fails.
type Order struct {
	ID        string
	Number    string
	Items     []CartItem
	Totals    OrderTotals
	Form      CheckoutForm
	CreatedAt time.Time
}

// Confirmation is the order view returned to the caller after a successful
// submission. Payment secrets are deliberately absent.
type Confirmation struct {
	OrderNumber   string      `json:"orderNumber"`
	Items         []CartItem  `json:"items"`
	Totals        OrderTotals `json:"totals"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Address       string      `json:"address"`
	ZipCode       string      `json:"zipCode"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	PaymentMethod PaymentKind `json:"paymentMethod"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Confirmation strips payment secrets from the order snapshot.
func (o Order) Confirmation() Confirmation {
	return Confirmation{
		OrderNumber:   o.Number,
		Items:         o.Items,
		Totals:        o.Totals,
		Name:          o.Form.Name,
		Email:         o.Form.Email,
		Address:       o.Form.Address,
		ZipCode:       o.Form.ZipCode,
		City:          o.Form.City,
		Country:       o.Form.Country,
		PaymentMethod: o.Form.Payment.Kind,
		CreatedAt:     o.CreatedAt,
	}
}
