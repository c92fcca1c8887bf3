package domain

// PaymentKind tags the payment variant chosen at checkout.
type PaymentKind string

const (
	PaymentEMoney PaymentKind = "e-money"
	PaymentCash   PaymentKind = "cash"
)

// Payment is a tagged variant: the e-money fields are meaningful only when
// Kind is PaymentEMoney. Cash on delivery carries no companion fields.
type Payment struct {
	Kind         PaymentKind
	EMoneyNumber string
	EMoneyPIN    string
}

// CheckoutForm is the transient billing/shipping/payment input aggregate.
// It exists only for the duration of a checkout interaction.
type CheckoutForm struct {
	Name    string
	Email   string
	Phone   string
	Address string
	ZipCode string
	City    string
	Country string
	Payment Payment
}
