package shopapi

import "github.com/glitzzera/admin-core/internal/models"

// ProductListResponse is the payload of GET /api/products. The count fields
// are pointers because older backend deployments return only the product
// array; HasCounts tells callers whether to fall back to a client-side
// recompute.
type ProductListResponse struct {
	Products        []models.Product `json:"products"`
	TotalCount      *int             `json:"totalCount,omitempty"`
	ActiveCount     *int             `json:"activeCount,omitempty"`
	OutOfStockCount *int             `json:"outOfStockCount,omitempty"`
	LowStockCount   *int             `json:"lowStockCount,omitempty"`
}

// HasCounts reports whether the backend supplied all four counters.
func (r *ProductListResponse) HasCounts() bool {
	return r.TotalCount != nil && r.ActiveCount != nil &&
		r.OutOfStockCount != nil && r.LowStockCount != nil
}

// Stats converts the backend counters to ProductStats. Call only when
// HasCounts is true.
func (r *ProductListResponse) Stats() models.ProductStats {
	return models.ProductStats{
		TotalProducts:  *r.TotalCount,
		ActiveProducts: *r.ActiveCount,
		OutOfStock:     *r.OutOfStockCount,
		LowStock:       *r.LowStockCount,
	}
}

// categoryProductsResponse is the payload of GET /api/products/by-category/:id.
type categoryProductsResponse struct {
	Products []models.Product `json:"products"`
}

// customersResponse is the payload of GET /api/users/info.
type customersResponse struct {
	DetailedUsers []models.Customer `json:"detailedUsers"`
}

// errorBody is the backend's error envelope. Some endpoints use "error",
// others "message"; take whichever is present.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b *errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}
