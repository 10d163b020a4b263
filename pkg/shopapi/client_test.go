package shopapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glitzzera/admin-core/internal/models"
)

func testClient(url string) *Client {
	return NewClient(url, 5*time.Second, false)
}

func asAPIError(t *testing.T, err error) *APIError {
	t.Helper()
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	return apiErr
}

func TestGetProductsDecodesCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [{"_id":"p1","shortTitle":"Ring","stockQty":5,"status":true}],
			"totalCount": 1, "activeCount": 1, "outOfStockCount": 0, "lowStockCount": 1
		}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).GetProducts(context.Background())
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ShortTitle != "Ring" {
		t.Errorf("unexpected products: %+v", resp.Products)
	}
	if !resp.HasCounts() {
		t.Fatal("expected backend counts to be detected")
	}
	if stats := resp.Stats(); stats.LowStock != 1 || stats.TotalProducts != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestGetProductsWithoutCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": []}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).GetProducts(context.Background())
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if resp.HasCounts() {
		t.Error("counts must not be reported for a payload without them")
	}
}

func TestValidationErrorOn4xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"catname is required"}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).CreateCategory(context.Background(), &CategoryInput{})
	apiErr := asAPIError(t, err)
	if apiErr.Kind != KindValidation {
		t.Errorf("expected KindValidation, got %s", apiErr.Kind)
	}
	if apiErr.Retryable {
		t.Error("validation errors must not be retryable")
	}
	if apiErr.Message != "catname is required" {
		t.Errorf("expected backend message passthrough, got %q", apiErr.Message)
	}
}

func TestServerErrorOn5xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetOrders(context.Background())
	apiErr := asAPIError(t, err)
	if apiErr.Kind != KindServer {
		t.Errorf("expected KindServer, got %s", apiErr.Kind)
	}
	if !apiErr.Retryable {
		t.Error("5xx errors must be retryable")
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", apiErr.StatusCode)
	}
}

func TestNetworkErrorOnUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := testClient(srv.URL).GetCoupons(context.Background())
	apiErr := asAPIError(t, err)
	if apiErr.Kind != KindNetwork {
		t.Errorf("expected KindNetwork, got %s", apiErr.Kind)
	}
	if !apiErr.Retryable {
		t.Error("network errors must be retryable")
	}
}

func TestServerErrorOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetProducts(context.Background())
	apiErr := asAPIError(t, err)
	if apiErr.Kind != KindServer {
		t.Errorf("expected KindServer for malformed body, got %s", apiErr.Kind)
	}
}

func TestUpdateProductSendsMultipartForm(t *testing.T) {
	var (
		gotContentType string
		gotFields      map[string][]string
		gotFile        string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/products/p1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotFields = r.MultipartForm.Value
		if files := r.MultipartForm.File["images"]; len(files) == 1 {
			gotFile = files[0].Filename
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	in := &ProductUpdate{
		ShortTitle: "Rose Gold Ring",
		Price:      1299,
		StockQty:   25,
		Status:     true,
		Images:     []string{"/uploads/existing.jpg"},
		ImageFiles: []FileUpload{{FileName: "new.jpg", Reader: strings.NewReader("fakejpeg")}},
		Sizes:      []models.Size{{SizeName: "6", StockQty: 10}},
	}
	if err := testClient(srv.URL).UpdateProduct(context.Background(), "p1", in); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Errorf("expected multipart content type, got %q", gotContentType)
	}
	if got := gotFields["shortTitle"]; len(got) != 1 || got[0] != "Rose Gold Ring" {
		t.Errorf("shortTitle field = %v", got)
	}
	if got := gotFields["price"]; len(got) != 1 || got[0] != "1299" {
		t.Errorf("price field = %v", got)
	}
	if got := gotFields["images"]; len(got) != 1 || got[0] != "/uploads/existing.jpg" {
		t.Errorf("images field = %v", got)
	}
	if gotFile != "new.jpg" {
		t.Errorf("expected uploaded file new.jpg, got %q", gotFile)
	}

	var sizes []models.Size
	if err := json.Unmarshal([]byte(gotFields["sizes"][0]), &sizes); err != nil {
		t.Fatalf("sizes field is not JSON: %v", err)
	}
	if len(sizes) != 1 || sizes[0].SizeName != "6" {
		t.Errorf("unexpected sizes payload: %+v", sizes)
	}
}

func TestUpdateOrderStatusSendsPartialJSON(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/orders/o1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).UpdateOrderStatus(context.Background(), "o1", models.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if len(gotBody) != 1 || gotBody["orderStatus"] != "Shipped" {
		t.Errorf("expected partial body {orderStatus: Shipped}, got %v", gotBody)
	}
}

func TestContextCancellationAborts(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(srv.URL).GetProducts(ctx)
	apiErr := asAPIError(t, err)
	if apiErr.Kind != KindNetwork {
		t.Errorf("expected KindNetwork on cancellation, got %s", apiErr.Kind)
	}
}
