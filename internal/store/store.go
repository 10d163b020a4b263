// Package store implements the shared application state container for the
// Glitzzera admin dashboard: authentication state, navigation state, and
// the in-memory entity caches that mirror the backend collections. Views
// receive a *Store by reference; there is no ambient global state.
package store

import (
	"context"
	"sync"

	"github.com/glitzzera/admin-core/internal/config"
	"github.com/glitzzera/admin-core/internal/models"
	"github.com/glitzzera/admin-core/internal/storage"
	"github.com/glitzzera/admin-core/pkg/shopapi"
)

// Backend is the subset of the shop API consumed by the store. Satisfied by
// *shopapi.Client.
type Backend interface {
	GetProducts(ctx context.Context) (*shopapi.ProductListResponse, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id string, in *shopapi.ProductUpdate) error
	DeleteProduct(ctx context.Context, id string) error
	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, in *shopapi.CategoryInput) error
	UpdateCategory(ctx context.Context, id string, in *shopapi.CategoryInput) error
	DeleteCategory(ctx context.Context, id string) error
	GetCoupons(ctx context.Context) ([]models.Coupon, error)
	CreateCoupon(ctx context.Context, in *shopapi.CouponInput) error
	UpdateCoupon(ctx context.Context, id string, in *shopapi.CouponUpdate) error
	DeleteCoupon(ctx context.Context, id string) error
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, in *shopapi.OrderCreate) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
	GetCustomers(ctx context.Context) ([]models.Customer, error)
	GetAddresses(ctx context.Context, userID string) ([]models.Address, error)
}

// Entity identifies one cached backend collection.
type Entity string

const (
	EntityProducts   Entity = "products"
	EntityCategories Entity = "categories"
	EntityCoupons    Entity = "coupons"
	EntityOrders     Entity = "orders"
	EntityCustomers  Entity = "customers"
)

// MessageKind is the variant of a transient banner message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is a transient banner shown after order operations. Dismissed
// manually via ClearMessage.
type Message struct {
	Text string
	Kind MessageKind
}

// Store is the application state container.
type Store struct {
	api     Backend
	kv      storage.KV
	session config.SessionConfig

	mu sync.RWMutex

	auth        AuthState
	currentPage Page
	sidebarOpen bool
	message     *Message

	selectedProduct  *models.Product
	selectedCategory *models.Category
	selectedOrder    *models.Order

	products         []models.Product
	categoryProducts []models.Product
	categories       []models.Category
	coupons          []models.Coupon
	orders           []models.Order
	customers        []models.Customer
	stats            models.ProductStats

	loading map[Entity]bool

	// Per-entity mutation locks: a write and its refetch run as one unit,
	// so a slow refetch can never resurrect data deleted by a later write.
	prodMu   sync.Mutex
	catMu    sync.Mutex
	couponMu sync.Mutex
	orderMu  sync.Mutex
}

// New constructs a Store. The caller drives the auth lifecycle by calling
// Restore once at startup.
func New(api Backend, kv storage.KV, session config.SessionConfig) *Store {
	return &Store{
		api:         api,
		kv:          kv,
		session:     session,
		auth:        StateLoading,
		currentPage: DefaultPage,
		loading:     map[Entity]bool{},
	}
}

// Loading reports whether a fetch for the given entity is outstanding.
func (s *Store) Loading(e Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[e]
}

func (s *Store) setLoading(e Entity, v bool) {
	s.mu.Lock()
	s.loading[e] = v
	s.mu.Unlock()
}

// SidebarOpen reports the responsive sidebar state.
func (s *Store) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

// ToggleSidebar flips the sidebar state. Never persisted.
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	s.sidebarOpen = !s.sidebarOpen
	s.mu.Unlock()
}

// Message returns the current banner message, if any.
func (s *Store) Message() (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.message == nil {
		return Message{}, false
	}
	return *s.message, true
}

// SetMessage replaces the banner message.
func (s *Store) SetMessage(text string, kind MessageKind) {
	s.mu.Lock()
	s.message = &Message{Text: text, Kind: kind}
	s.mu.Unlock()
}

// ClearMessage dismisses the banner.
func (s *Store) ClearMessage() {
	s.mu.Lock()
	s.message = nil
	s.mu.Unlock()
}
