// Package shopapi is the HTTP client boundary to the Glitzzera backend REST
// API. All real business logic (persistence, validation, stock accounting,
// order totals) lives server-side; this package only ships typed requests
// and decodes typed responses. No retries, no backoff: callers decide what
// to do with a failure, guided by APIError.Retryable.
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/glitzzera/admin-core/internal/models"
)

// Client is the HTTP client for the Glitzzera backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	debug      bool
}

// NewClient constructs a client for the given base URL. The timeout bounds
// every request end to end so a hung backend can never hang a loading
// indicator indefinitely.
func NewClient(baseURL string, timeout time.Duration, debug bool) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		debug:      debug,
	}
}

// GetProducts retrieves the full product list, with dashboard counters when
// the backend provides them.
func (c *Client) GetProducts(ctx context.Context) (*ProductListResponse, error) {
	var resp ProductListResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProductsByCategory retrieves the products belonging to one category.
func (c *Client) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var resp categoryProductsResponse
	path := "/api/products/by-category/" + categoryID
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// UpdateProduct submits a product edit as multipart form-data.
func (c *Client) UpdateProduct(ctx context.Context, id string, in *ProductUpdate) error {
	return c.doMultipart(ctx, http.MethodPut, "/api/products/"+id, in.encode)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, "", nil, nil)
}

// GetCategories retrieves all categories.
func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category from multipart form-data.
func (c *Client) CreateCategory(ctx context.Context, in *CategoryInput) error {
	return c.doMultipart(ctx, http.MethodPost, "/api/categories", in.encode)
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, in *CategoryInput) error {
	return c.doMultipart(ctx, http.MethodPut, "/api/categories/"+id, in.encode)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+id, "", nil, nil)
}

// GetCoupons retrieves all coupons.
func (c *Client) GetCoupons(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := c.do(ctx, http.MethodGet, "/api/coupons", "", nil, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// CreateCoupon creates a coupon from multipart form-data.
func (c *Client) CreateCoupon(ctx context.Context, in *CouponInput) error {
	return c.doMultipart(ctx, http.MethodPost, "/api/coupons", in.encode)
}

// UpdateCoupon applies a partial coupon update.
func (c *Client) UpdateCoupon(ctx context.Context, id string, in *CouponUpdate) error {
	return c.doMultipart(ctx, http.MethodPut, "/api/coupons/"+id, in.encode)
}

// DeleteCoupon removes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/coupons/"+id, "", nil, nil)
}

// GetOrders retrieves all orders.
func (c *Client) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", "", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder retrieves one order with populated product, user, and address
// references.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+id, "", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places a new order and returns the created record.
func (c *Client) CreateOrder(ctx context.Context, in *OrderCreate) (*models.Order, error) {
	var order models.Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus changes an order's fulfillment status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return c.doJSON(ctx, http.MethodPut, "/api/orders/"+id, orderStatusUpdate{OrderStatus: status}, nil)
}

// GetCustomers retrieves the server-assembled customer aggregates.
func (c *Client) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	var resp customersResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/info", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.DetailedUsers, nil
}

// GetAddresses retrieves a customer's shipping addresses.
func (c *Client) GetAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.do(ctx, http.MethodGet, "/api/addresses/"+userID, "", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// doJSON marshals body as JSON and performs the request.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(payload), result)
}

// doMultipart builds a multipart form via encode and performs the request.
func (c *Client) doMultipart(ctx context.Context, method, path string, encode func(*multipart.Writer) error) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := encode(w); err != nil {
		return fmt.Errorf("failed to build multipart form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart form: %w", err)
	}
	return c.do(ctx, method, path, w.FormDataContentType(), &buf, nil)
}

// do performs the HTTP request and decodes the JSON response into result.
// Failures are always returned as *APIError: transport problems as network
// errors, 4xx as validation errors, 5xx and undecodable bodies as server
// errors.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.New().String()[:8]
	req.Header.Set("X-Request-ID", requestID)

	if c.debug {
		log.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("url", c.baseURL+path).
			Msg("[SHOPAPI] Outgoing request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if c.debug {
		log.Debug().
			Str("request_id", requestID).
			Str("path", path).
			Int("status_code", resp.StatusCode).
			Msg("[SHOPAPI] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)
		return statusError(resp.StatusCode, eb.text())
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return decodeError(err)
	}
	return nil
}
