package models

import "time"

// OrderStatus enumerates the order fulfillment states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// IsValid reports whether s is one of the known fulfillment states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line item of an order. Size is optional for products
// without per-size stock.
type OrderItem struct {
	ProductID Ref    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// PaymentInfo describes how an order is paid.
type PaymentInfo struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
}

// Order represents a customer order. The backend enforces that TotalAmount
// equals the sum of line item price*quantity minus Discount; the client
// does not re-verify.
type Order struct {
	ID          string      `json:"_id"`
	UserID      Ref         `json:"userId"`
	AddressID   Ref         `json:"addressId"`
	Products    []OrderItem `json:"products"`
	PaymentInfo PaymentInfo `json:"paymentInfo"`
	TotalAmount float64     `json:"totalAmount"`
	Discount    float64     `json:"discount"`
	OrderStatus OrderStatus `json:"orderStatus"`
	IsPaid      bool        `json:"isPaid"`
	CreatedAt   time.Time   `json:"createdAt"`
}
