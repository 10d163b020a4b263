package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glitzzera/admin-core/internal/models"
)

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func seededServer() *Server {
	s := NewServer()
	s.Seed(SampleProducts(), SampleCategories(), nil, SampleUsers(), SampleAddresses())
	return s
}

func TestCreateOrderRecomputesTotalAndStock(t *testing.T) {
	s := seededServer()
	productID := SampleProducts()[0].ID // price 1299, stock 25

	w := postJSON(t, s, "/api/orders", map[string]any{
		"userId":    FixtureUserPriya,
		"addressId": FixtureAddressPriya,
		"products": []map[string]any{
			{"productId": productID, "quantity": 3},
		},
		"paymentInfo": map[string]any{"method": "COD", "status": "Pending"},
		"totalAmount": 1.0, // client-sent total must be ignored
		"discount":    100.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.TotalAmount != 1299*3-100 {
		t.Errorf("expected server-computed total %d, got %v", 1299*3-100, order.TotalAmount)
	}
	if order.OrderStatus != models.OrderStatusPending {
		t.Errorf("expected Pending, got %q", order.OrderStatus)
	}

	// Stock decremented on the product table.
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	var list struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	for _, p := range list.Products {
		if p.ID == productID && p.StockQty != 22 {
			t.Errorf("expected stock 22 after ordering 3 of 25, got %d", p.StockQty)
		}
	}
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	s := seededServer()
	lowStockID := SampleProducts()[1].ID // stock 4

	w := postJSON(t, s, "/api/orders", map[string]any{
		"userId":    FixtureUserPriya,
		"addressId": FixtureAddressPriya,
		"products": []map[string]any{
			{"productId": lowStockID, "quantity": 5},
		},
		"paymentInfo": map[string]any{"method": "COD", "status": "Pending"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for insufficient stock, got %d", w.Code)
	}
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	s := seededServer()

	w := postJSON(t, s, "/api/orders", map[string]any{
		"userId":    FixtureUserPriya,
		"addressId": FixtureAddressPriya,
		"products": []map[string]any{
			{"productId": "ffffffffffffffffffffffff", "quantity": 1},
		},
		"paymentInfo": map[string]any{"method": "COD", "status": "Pending"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown product, got %d", w.Code)
	}
}

func TestOrderOutOfStockFlagDerived(t *testing.T) {
	s := seededServer()
	lowStockID := SampleProducts()[1].ID // stock 4

	w := postJSON(t, s, "/api/orders", map[string]any{
		"userId":    FixtureUserPriya,
		"addressId": FixtureAddressPriya,
		"products": []map[string]any{
			{"productId": lowStockID, "quantity": 4},
		},
		"paymentInfo": map[string]any{"method": "COD", "status": "Pending"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	var list struct {
		Products        []models.Product `json:"products"`
		OutOfStockCount int              `json:"outOfStockCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	for _, p := range list.Products {
		if p.ID == lowStockID && !p.IsOOS {
			t.Error("product drained to zero stock must be flagged out of stock")
		}
	}
	if list.OutOfStockCount != 2 {
		t.Errorf("expected 2 out-of-stock products, got %d", list.OutOfStockCount)
	}
}

func TestUpdateOrderRejectsInvalidStatus(t *testing.T) {
	s := seededServer()
	productID := SampleProducts()[0].ID

	created := postJSON(t, s, "/api/orders", map[string]any{
		"userId":    FixtureUserPriya,
		"addressId": FixtureAddressPriya,
		"products": []map[string]any{
			{"productId": productID, "quantity": 1},
		},
		"paymentInfo": map[string]any{"method": "COD", "status": "Pending"},
	})
	var order models.Order
	if err := json.Unmarshal(created.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}

	raw, _ := json.Marshal(map[string]string{"orderStatus": "Teleported"})
	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+order.ID, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", w.Code)
	}
}
