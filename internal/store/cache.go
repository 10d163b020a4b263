package store

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/glitzzera/admin-core/internal/models"
	"github.com/glitzzera/admin-core/pkg/shopapi"
)

// Accessors return snapshot copies so views can iterate without holding the
// store lock and without observing a refetch mid-render.

// Products returns the cached product collection.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// CategoryProducts returns the cached products of the selected category.
func (s *Store) CategoryProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.categoryProducts...)
}

// Categories returns the cached category collection.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// Coupons returns the cached coupon collection.
func (s *Store) Coupons() []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Coupon(nil), s.coupons...)
}

// Orders returns the cached order collection.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

// Customers returns the cached customer aggregates.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

// Stats returns the dashboard product counters.
func (s *Store) Stats() models.ProductStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// FetchProducts replaces the product cache with the backend's current list
// and refreshes the dashboard counters. Backend-supplied counts are
// preferred; when the payload carries none, the counters are recomputed from
// the list so both sourcing strategies yield the same invariants. On failure
// the previous snapshot is retained.
func (s *Store) FetchProducts(ctx context.Context) error {
	s.setLoading(EntityProducts, true)
	defer s.setLoading(EntityProducts, false)

	resp, err := s.api.GetProducts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch products")
		return err
	}

	stats := models.ComputeProductStats(resp.Products)
	if resp.HasCounts() {
		stats = resp.Stats()
	}

	s.mu.Lock()
	s.products = resp.Products
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// FetchCategoryProducts replaces the category-scoped product cache with the
// products of the currently selected category. With no selection the cache
// is emptied and the view renders its "nothing selected" state.
func (s *Store) FetchCategoryProducts(ctx context.Context) error {
	category, ok := s.SelectedCategory()
	if !ok {
		s.mu.Lock()
		s.categoryProducts = nil
		s.mu.Unlock()
		return nil
	}

	s.setLoading(EntityProducts, true)
	defer s.setLoading(EntityProducts, false)

	products, err := s.api.GetProductsByCategory(ctx, category.ID)
	if err != nil {
		log.Error().Err(err).Str("category_id", category.ID).Msg("failed to fetch category products")
		return err
	}

	s.mu.Lock()
	s.categoryProducts = products
	s.mu.Unlock()
	return nil
}

// FetchCategories replaces the category cache.
func (s *Store) FetchCategories(ctx context.Context) error {
	s.setLoading(EntityCategories, true)
	defer s.setLoading(EntityCategories, false)

	categories, err := s.api.GetCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch categories")
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// FetchCoupons replaces the coupon cache.
func (s *Store) FetchCoupons(ctx context.Context) error {
	s.setLoading(EntityCoupons, true)
	defer s.setLoading(EntityCoupons, false)

	coupons, err := s.api.GetCoupons(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch coupons")
		return err
	}

	s.mu.Lock()
	s.coupons = coupons
	s.mu.Unlock()
	return nil
}

// FetchOrders replaces the order cache.
func (s *Store) FetchOrders(ctx context.Context) error {
	s.setLoading(EntityOrders, true)
	defer s.setLoading(EntityOrders, false)

	orders, err := s.api.GetOrders(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch orders")
		return err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// FetchCustomers replaces the customer cache.
func (s *Store) FetchCustomers(ctx context.Context) error {
	s.setLoading(EntityCustomers, true)
	defer s.setLoading(EntityCustomers, false)

	customers, err := s.api.GetCustomers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch customers")
		return err
	}

	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
	return nil
}

// OrderDetail fetches one order with populated references. Detail views are
// modal and short-lived, so the result is returned rather than cached.
func (s *Store) OrderDetail(ctx context.Context, id string) (*models.Order, error) {
	return s.api.GetOrder(ctx, id)
}

// Addresses fetches a customer's shipping addresses. Not cached for the same
// reason as OrderDetail.
func (s *Store) Addresses(ctx context.Context, userID string) ([]models.Address, error) {
	return s.api.GetAddresses(ctx, userID)
}

// Mutations below run write-then-refetch as one unit under the entity's
// mutation lock. The call returns only once the cache reflects the
// acknowledged server state, so there is no window where a reader observes
// the pre-refetch snapshot after a mutation reported success.

// UpdateProduct submits a product edit and resynchronizes the product cache.
func (s *Store) UpdateProduct(ctx context.Context, id string, in *shopapi.ProductUpdate) error {
	s.prodMu.Lock()
	defer s.prodMu.Unlock()

	if err := s.api.UpdateProduct(ctx, id, in); err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return err
	}
	return s.FetchProducts(ctx)
}

// DeleteProduct removes a product and resynchronizes the product cache.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.prodMu.Lock()
	defer s.prodMu.Unlock()

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}
	return s.FetchProducts(ctx)
}

// CreateCategory creates a category and resynchronizes the category cache.
func (s *Store) CreateCategory(ctx context.Context, in *shopapi.CategoryInput) error {
	s.catMu.Lock()
	defer s.catMu.Unlock()

	if err := s.api.CreateCategory(ctx, in); err != nil {
		log.Error().Err(err).Msg("failed to create category")
		return err
	}
	return s.FetchCategories(ctx)
}

// UpdateCategory updates a category and resynchronizes the category cache.
func (s *Store) UpdateCategory(ctx context.Context, id string, in *shopapi.CategoryInput) error {
	s.catMu.Lock()
	defer s.catMu.Unlock()

	if err := s.api.UpdateCategory(ctx, id, in); err != nil {
		log.Error().Err(err).Str("category_id", id).Msg("failed to update category")
		return err
	}
	return s.FetchCategories(ctx)
}

// DeleteCategory removes a category and resynchronizes the category cache.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.catMu.Lock()
	defer s.catMu.Unlock()

	if err := s.api.DeleteCategory(ctx, id); err != nil {
		log.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return err
	}
	return s.FetchCategories(ctx)
}

// CreateCoupon creates a coupon and resynchronizes the coupon cache.
func (s *Store) CreateCoupon(ctx context.Context, in *shopapi.CouponInput) error {
	s.couponMu.Lock()
	defer s.couponMu.Unlock()

	if err := s.api.CreateCoupon(ctx, in); err != nil {
		log.Error().Err(err).Msg("failed to create coupon")
		return err
	}
	return s.FetchCoupons(ctx)
}

// UpdateCoupon applies a partial coupon update and resynchronizes the cache.
func (s *Store) UpdateCoupon(ctx context.Context, id string, in *shopapi.CouponUpdate) error {
	s.couponMu.Lock()
	defer s.couponMu.Unlock()

	if err := s.api.UpdateCoupon(ctx, id, in); err != nil {
		log.Error().Err(err).Str("coupon_id", id).Msg("failed to update coupon")
		return err
	}
	return s.FetchCoupons(ctx)
}

// DeleteCoupon removes a coupon and resynchronizes the coupon cache.
func (s *Store) DeleteCoupon(ctx context.Context, id string) error {
	s.couponMu.Lock()
	defer s.couponMu.Unlock()

	if err := s.api.DeleteCoupon(ctx, id); err != nil {
		log.Error().Err(err).Str("coupon_id", id).Msg("failed to delete coupon")
		return err
	}
	return s.FetchCoupons(ctx)
}

// CreateOrder places an order, resynchronizes the order cache, and raises
// the banner message the order page displays.
func (s *Store) CreateOrder(ctx context.Context, in *shopapi.OrderCreate) (*models.Order, error) {
	s.orderMu.Lock()
	defer s.orderMu.Unlock()

	order, err := s.api.CreateOrder(ctx, in)
	if err != nil {
		log.Error().Err(err).Msg("failed to create order")
		s.SetMessage("Failed to place order.", MessageError)
		return nil, err
	}

	if err := s.FetchOrders(ctx); err != nil {
		return order, err
	}
	s.SetMessage("Order placed successfully!", MessageSuccess)
	return order, nil
}

// UpdateOrderStatus changes an order's fulfillment status and
// resynchronizes the order cache.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	s.orderMu.Lock()
	defer s.orderMu.Unlock()

	if err := s.api.UpdateOrderStatus(ctx, id, status); err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		s.SetMessage("Failed to update order status.", MessageError)
		return err
	}

	if err := s.FetchOrders(ctx); err != nil {
		return err
	}
	s.SetMessage("Order status updated successfully!", MessageSuccess)
	return nil
}
