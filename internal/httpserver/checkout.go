package httpserver

import (
	"errors"
	"net/http"

	"github.com/dev-star23/Audiophile/internal/domain"
	checkoutsvc "github.com/dev-star23/Audiophile/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

// checkoutRequest is the wire shape of the checkout form. The payment method
// arrives as a loose string plus optional companion fields and is folded into
// the tagged domain variant before validation.
type checkoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ZipCode       string `json:"zipCode"`
	City          string `json:"city"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
	EMoneyNumber  string `json:"eMoneyNumber"`
	EMoneyPIN     string `json:"eMoneyPIN"`
}

func (r checkoutRequest) toForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		ZipCode: r.ZipCode,
		City:    r.City,
		Country: r.Country,
		Payment: domain.Payment{
			Kind:         domain.PaymentKind(r.PaymentMethod),
			EMoneyNumber: r.EMoneyNumber,
			EMoneyPIN:    r.EMoneyPIN,
		},
	}
}

func checkoutHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		confirmation, err := svc.Submit(c.Request.Context(), req.toForm())
		if err != nil {
			var verr *checkoutsvc.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			case errors.Is(err, domain.ErrSubmissionInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": "submission already in progress"})
			default:
				// Collaborator failure: the cart is preserved, retry allowed.
				c.JSON(http.StatusBadGateway, gin.H{"error": "order submission failed, please try again"})
			}
			return
		}

		c.JSON(http.StatusOK, confirmation)
	}
}
