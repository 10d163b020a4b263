// Package mockapi is an in-memory implementation of the Glitzzera backend
// REST contract. It exists for local development (cmd/mockbackend) and for
// integration tests that need a backend honoring the same invariants the
// real one does: server-side product counters, stock accounting on order
// placement, recomputed order totals, and coupon usage tracking.
package mockapi

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/glitzzera/admin-core/internal/models"
)

// Server holds the in-memory tables and the gin engine serving them.
type Server struct {
	mu sync.Mutex

	products   []models.Product
	categories []models.Category
	coupons    []models.Coupon
	orders     []models.Order
	users      []models.User
	wishlists  map[string][]models.WishlistItem // by user ID
	addresses  []models.Address

	engine *gin.Engine
}

// NewServer constructs a mock backend with empty tables.
func NewServer() *Server {
	s := &Server{wishlists: map[string][]models.WishlistItem{}}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/products", s.listProducts)
		api.GET("/products/by-category/:id", s.listProductsByCategory)
		api.PUT("/products/:id", s.updateProduct)
		api.DELETE("/products/:id", s.deleteProduct)

		api.GET("/categories", s.listCategories)
		api.POST("/categories", s.createCategory)
		api.PUT("/categories/:id", s.updateCategory)
		api.DELETE("/categories/:id", s.deleteCategory)

		api.GET("/coupons", s.listCoupons)
		api.POST("/coupons", s.createCoupon)
		api.PUT("/coupons/:id", s.updateCoupon)
		api.DELETE("/coupons/:id", s.deleteCoupon)

		api.GET("/orders", s.listOrders)
		api.GET("/orders/:id", s.getOrder)
		api.POST("/orders", s.createOrder)
		api.PUT("/orders/:id", s.updateOrder)

		api.GET("/users/info", s.listCustomers)
		api.GET("/addresses/:userId", s.listAddresses)
	}

	s.engine = r
	return s
}

// Handler exposes the underlying engine for httptest and for cmd/mockbackend.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}

// Seed replaces the tables with fixture data.
func (s *Server) Seed(products []models.Product, categories []models.Category,
	coupons []models.Coupon, users []models.User, addresses []models.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]models.Product(nil), products...)
	s.categories = append([]models.Category(nil), categories...)
	s.coupons = append([]models.Coupon(nil), coupons...)
	s.users = append([]models.User(nil), users...)
	s.addresses = append([]models.Address(nil), addresses...)
	s.orders = nil
}

// newID mints a 24-hex-char identifier matching the Mongo ObjectID format
// the real backend uses.
func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:24]
}

// requestLogger logs basic request/response details.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Debug().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("mock backend request")
	}
}

func errorJSON(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}
