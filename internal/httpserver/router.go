package httpserver

import (
	"log"
	"time"

	"github.com/dev-star23/Audiophile/internal/repository/product"
	cartsvc "github.com/dev-star23/Audiophile/internal/service/cart"
	checkoutsvc "github.com/dev-star23/Audiophile/internal/service/checkout"
	recommendsvc "github.com/dev-star23/Audiophile/internal/service/recommend"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the wired services the routes depend on.
type Deps struct {
	ProductRepo  product.Repository
	CartStore    *cartsvc.Store
	CheckoutSvc  *checkoutsvc.Service
	RecommendSvc *recommendsvc.Service
	CORSOrigins  []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.ProductRepo))
		api.GET("/products/:slug", getProductHandler(deps.ProductRepo))
		api.GET("/products/:slug/related", relatedProductsHandler(deps.RecommendSvc))
		api.GET("/categories/:category/products", listCategoryHandler(deps.ProductRepo))

		api.GET("/cart", getCartHandler(deps.CartStore))
		api.POST("/cart/items", addCartItemHandler(deps.CartStore, deps.ProductRepo))
		api.PATCH("/cart/items/:id", updateCartItemHandler(deps.CartStore))
		api.DELETE("/cart/items/:id", removeCartItemHandler(deps.CartStore))
		api.DELETE("/cart", clearCartHandler(deps.CartStore))

		api.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
	}

	return router
}
