package httpapi

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	carthttp "github.com/shopforge/storefront/internal/cart/http"
	cataloghttp "github.com/shopforge/storefront/internal/catalog/http"
	identityhttp "github.com/shopforge/storefront/internal/identity/http"
	orderhttp "github.com/shopforge/storefront/internal/order/http"
	wishlisthttp "github.com/shopforge/storefront/internal/wishlist/http"
)

type Handlers struct {
	Identity *identityhttp.Handler
	Catalog  *cataloghttp.Handler
	Cart     *carthttp.Handler
	Wishlist *wishlisthttp.Handler
	Order    *orderhttp.Handler
}

// NewRouter assembles the full route tree. The db handle is only used by
// the health check.
func NewRouter(h Handlers, db *sql.DB, jwtSecret []byte, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), Logging(log), Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.POST("/auth/register", h.Identity.Register)
	api.POST("/auth/login", h.Identity.Login)

	api.GET("/products", h.Catalog.ListProducts)
	api.GET("/products/:id", h.Catalog.GetProduct)
	api.GET("/categories", h.Catalog.ListCategories)

	auth := api.Group("", Auth(jwtSecret))

	auth.GET("/auth/profile", h.Identity.Profile)

	auth.GET("/cart", h.Cart.GetCart)
	auth.POST("/cart/items", h.Cart.AddItem)
	auth.PUT("/cart/items/:product_id", h.Cart.SetQuantity)
	auth.DELETE("/cart/items/:product_id", h.Cart.RemoveItem)

	auth.GET("/wishlist", h.Wishlist.GetWishlist)
	auth.POST("/wishlist/items", h.Wishlist.AddItem)
	auth.DELETE("/wishlist/items/:product_id", h.Wishlist.RemoveItem)
	auth.POST("/wishlist/items/:product_id/move-to-cart", h.Wishlist.MoveToCart)

	auth.POST("/orders", h.Order.PlaceOrder)
	auth.GET("/orders", h.Order.ListOrders)
	auth.GET("/orders/:id", h.Order.GetOrder)

	return r
}
