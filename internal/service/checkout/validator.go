package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dev-star23/Audiophile/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError carries the per-field error map produced by Validate.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout form invalid (%d fields)", len(e.Fields))
}

// Validate checks every field of the form independently so the caller sees
// all violations at once. Keys are the wire field names. An empty map means
// the form is valid.
func Validate(form domain.CheckoutForm) map[string]string {
	errs := make(map[string]string)

	requireLen(errs, "name", form.Name, 2)
	if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		errs["email"] = "must be a valid email address"
	}
	requireLen(errs, "phone", form.Phone, 5)
	requireLen(errs, "address", form.Address, 5)
	requireLen(errs, "zipCode", form.ZipCode, 3)
	requireLen(errs, "city", form.City, 2)
	requireLen(errs, "country", form.Country, 2)

	switch form.Payment.Kind {
	case domain.PaymentEMoney:
		requireLen(errs, "eMoneyNumber", form.Payment.EMoneyNumber, 9)
		requireLen(errs, "eMoneyPIN", form.Payment.EMoneyPIN, 4)
	case domain.PaymentCash:
		// Cash on delivery needs no companion fields.
	default:
		errs["paymentMethod"] = "must be e-money or cash"
	}

	return errs
}

func requireLen(errs map[string]string, field, value string, min int) {
	if len(strings.TrimSpace(value)) < min {
		errs[field] = fmt.Sprintf("must be at least %d characters", min)
	}
}
