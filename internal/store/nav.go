package store

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/glitzzera/admin-core/internal/models"
	"github.com/glitzzera/admin-core/internal/storage"
)

// Page is a navigation token selecting which view is rendered.
type Page string

// The closed set of pages the dashboard can show.
const (
	PageDashboard        Page = "dashboard"
	PageProducts         Page = "products"
	PageEditProduct      Page = "editProduct"
	PageAddProduct       Page = "addProduct"
	PageCategories       Page = "categories"
	PageAddCategory      Page = "addCategory"
	PageCategoryProducts Page = "categoryProducts"
	PageOrders           Page = "orderPage"
	PageCustomers        Page = "customers"
	PageCoupons          Page = "coupons"
	PageAddCoupon        Page = "addCoupon"
	PageSettings         Page = "settings"
)

// DefaultPage is the landing page after login and the fallback for unknown
// tokens.
const DefaultPage = PageDashboard

// Valid reports whether p belongs to the closed page set.
func (p Page) Valid() bool {
	switch p {
	case PageDashboard, PageProducts, PageEditProduct, PageAddProduct,
		PageCategories, PageAddCategory, PageCategoryProducts, PageOrders,
		PageCustomers, PageCoupons, PageAddCoupon, PageSettings:
		return true
	}
	return false
}

// CurrentPage returns the active navigation token.
func (s *Store) CurrentPage() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// SetCurrentPage switches the active view and persists the token so a
// restart resumes on the same page. Unknown tokens fall back to the default
// page; navigation never errors.
func (s *Store) SetCurrentPage(ctx context.Context, p Page) {
	if !p.Valid() {
		log.Warn().Str("page", string(p)).Msg("unknown page token, falling back to default")
		p = DefaultPage
	}

	s.mu.Lock()
	s.currentPage = p
	s.mu.Unlock()

	if err := s.kv.Set(ctx, storage.KeyLastPage, string(p)); err != nil {
		log.Error().Err(err).Msg("failed to persist current page")
	}
}

// restoreLastPage resumes the last-viewed page after a session restore.
// Invalid or missing tokens leave the default page in place.
func (s *Store) restoreLastPage(ctx context.Context) {
	raw, err := s.kv.Get(ctx, storage.KeyLastPage)
	if err != nil {
		return
	}
	if p := Page(raw); p.Valid() {
		s.mu.Lock()
		s.currentPage = p
		s.mu.Unlock()
	}
}

// SelectProduct records the product a detail view should show. Pass nil to
// clear.
func (s *Store) SelectProduct(p *models.Product) {
	s.mu.Lock()
	s.selectedProduct = p
	s.mu.Unlock()
}

// SelectedProduct returns the transient product selection. ok is false when
// no product is selected, and detail views must render their empty state
// rather than fail.
func (s *Store) SelectedProduct() (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedProduct == nil {
		return models.Product{}, false
	}
	return *s.selectedProduct, true
}

// SelectCategory records the category for the category-products view.
func (s *Store) SelectCategory(c *models.Category) {
	s.mu.Lock()
	s.selectedCategory = c
	s.mu.Unlock()
}

// SelectedCategory returns the transient category selection.
func (s *Store) SelectedCategory() (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedCategory == nil {
		return models.Category{}, false
	}
	return *s.selectedCategory, true
}

// SelectOrder records the order a detail view should show.
func (s *Store) SelectOrder(o *models.Order) {
	s.mu.Lock()
	s.selectedOrder = o
	s.mu.Unlock()
}

// SelectedOrder returns the transient order selection.
func (s *Store) SelectedOrder() (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedOrder == nil {
		return models.Order{}, false
	}
	return *s.selectedOrder, true
}
