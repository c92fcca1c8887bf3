package httpserver

import (
	"errors"
	"net/http"

	"github.com/dev-star23/Audiophile/internal/domain"
	"github.com/dev-star23/Audiophile/internal/repository/product"
	recommendsvc "github.com/dev-star23/Audiophile/internal/service/recommend"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repo.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func relatedProductsHandler(svc *recommendsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		related, err := svc.ForSlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if related == nil {
			related = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": related})
	}
}

func listCategoryHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := domain.Category(c.Param("category"))
		if !category.Valid() {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		products, err := repo.GetByCategory(c.Request.Context(), category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
