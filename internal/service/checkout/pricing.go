package checkout

import (
	"math"

	"github.com/dev-star23/Audiophile/internal/domain"
)

const (
	// ShippingFee is the flat shipping charge added to every order.
	ShippingFee int64 = 50

	// VATRate is the value-added tax rate shown at checkout. Item prices
	// already include VAT, so the computed figure is informational and is
	// never added to the grand total.
	VATRate = 0.15
)

// ComputeTotals derives the price breakdown for a cart subtotal. Shipping is
// additive; VAT is not, since it is already embedded in item prices.
func ComputeTotals(subtotal int64) domain.OrderTotals {
	return domain.OrderTotals{
		Subtotal:   subtotal,
		Shipping:   ShippingFee,
		VAT:        int64(math.Round(float64(subtotal) * VATRate)),
		GrandTotal: subtotal + ShippingFee,
	}
}
