package httpserver

import (
	"errors"
	"net/http"

	"github.com/dev-star23/Audiophile/internal/domain"
	"github.com/dev-star23/Audiophile/internal/repository/product"
	cartsvc "github.com/dev-star23/Audiophile/internal/service/cart"
	checkoutsvc "github.com/dev-star23/Audiophile/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Items      []domain.CartItem  `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice int64              `json:"totalPrice"`
	Totals     domain.OrderTotals `json:"totals"`
}

// toCartResponse snapshots the store, including the checkout price breakdown
// so the summary panel renders from one response.
func toCartResponse(store *cartsvc.Store) cartResponse {
	items := store.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
		Totals:     checkoutsvc.ComputeTotals(store.TotalPrice()),
	}
}

func getCartHandler(store *cartsvc.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

type addCartItemRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity int    `json:"quantity"`
}

func addCartItemHandler(store *cartsvc.Store, repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug required"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}

		p, err := repo.GetBySlug(c.Request.Context(), req.Slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		store.AddItem(c.Request.Context(), domain.CartItem{
			ID:       p.ID,
			Slug:     p.Slug,
			Name:     p.Title,
			Price:    p.Price,
			Image:    p.Image.Desktop,
			ImageAlt: p.Image.Alt,
		}, req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(store *cartsvc.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		store.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func removeCartItemHandler(store *cartsvc.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveItem(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func clearCartHandler(store *cartsvc.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveAll(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}
