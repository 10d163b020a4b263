package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glitzzera/admin-core/internal/models"
)

// orderCreateBody is the JSON body of POST /api/orders.
type orderCreateBody struct {
	UserID      string             `json:"userId"`
	AddressID   string             `json:"addressId"`
	Products    []models.OrderItem `json:"products"`
	PaymentInfo models.PaymentInfo `json:"paymentInfo"`
	TotalAmount float64            `json:"totalAmount"`
	Discount    float64            `json:"discount"`
	IsPaid      bool               `json:"isPaid"`
}

// orderUpdateBody is the JSON body of the partial PUT /api/orders/:id.
type orderUpdateBody struct {
	OrderStatus models.OrderStatus `json:"orderStatus"`
}

// listOrders returns all orders with the userId reference populated, the
// way the real backend does for the admin order table.
func (s *Server) listOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gin.H, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, s.orderDoc(o, false))
	}
	c.JSON(http.StatusOK, out)
}

// getOrder returns one order with user, address, and product references
// fully populated.
func (s *Server) getOrder(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			c.JSON(http.StatusOK, s.orderDoc(o, true))
			return
		}
	}
	errorJSON(c, http.StatusNotFound, "order not found")
}

// createOrder validates line items, performs stock accounting, recomputes
// the order total server-side, and stores the order as Pending.
func (s *Server) createOrder(c *gin.Context) {
	var body orderCreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid order payload")
		return
	}
	if len(body.Products) == 0 {
		errorJSON(c, http.StatusBadRequest, "order has no products")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate everything before touching stock.
	total := 0.0
	for _, item := range body.Products {
		if item.Quantity <= 0 {
			errorJSON(c, http.StatusBadRequest, "quantity must be positive")
			return
		}
		p := s.findProduct(item.ProductID.ID)
		if p == nil {
			errorJSON(c, http.StatusBadRequest, "unknown product "+item.ProductID.ID)
			return
		}
		if p.StockQty < item.Quantity {
			errorJSON(c, http.StatusBadRequest, "insufficient stock for "+p.ShortTitle)
			return
		}
		total += p.Price * float64(item.Quantity)
	}

	for _, item := range body.Products {
		p := s.findProduct(item.ProductID.ID)
		p.StockQty -= item.Quantity
		if item.Size != "" {
			for i := range p.Sizes {
				if p.Sizes[i].SizeName == item.Size && p.Sizes[i].StockQty >= item.Quantity {
					p.Sizes[i].StockQty -= item.Quantity
					p.Sizes[i].IsOOS = p.Sizes[i].StockQty == 0
				}
			}
		}
		p.IsOOS = p.StockQty == 0
	}

	order := models.Order{
		ID:          newID(),
		UserID:      models.NewRef(body.UserID),
		AddressID:   models.NewRef(body.AddressID),
		Products:    body.Products,
		PaymentInfo: body.PaymentInfo,
		TotalAmount: total - body.Discount,
		Discount:    body.Discount,
		OrderStatus: models.OrderStatusPending,
		IsPaid:      body.IsPaid,
		CreatedAt:   time.Now().UTC(),
	}
	s.orders = append(s.orders, order)

	c.JSON(http.StatusCreated, order)
}

func (s *Server) updateOrder(c *gin.Context) {
	id := c.Param("id")

	var body orderUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid order payload")
		return
	}
	if !body.OrderStatus.IsValid() {
		errorJSON(c, http.StatusBadRequest, "invalid orderStatus")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].OrderStatus = body.OrderStatus
			c.JSON(http.StatusOK, s.orders[i])
			return
		}
	}
	errorJSON(c, http.StatusNotFound, "order not found")
}

// orderDoc renders an order with its references populated. full also
// populates the address and per-line-item products. Caller must hold s.mu.
func (s *Server) orderDoc(o models.Order, full bool) gin.H {
	doc := gin.H{
		"_id":         o.ID,
		"userId":      o.UserID.ID,
		"addressId":   o.AddressID.ID,
		"products":    o.Products,
		"paymentInfo": o.PaymentInfo,
		"totalAmount": o.TotalAmount,
		"discount":    o.Discount,
		"orderStatus": o.OrderStatus,
		"isPaid":      o.IsPaid,
		"createdAt":   o.CreatedAt,
	}

	for _, u := range s.users {
		if u.ID == o.UserID.ID {
			doc["userId"] = u
			break
		}
	}
	if !full {
		return doc
	}

	for _, a := range s.addresses {
		if a.ID == o.AddressID.ID {
			doc["addressId"] = a
			break
		}
	}

	items := make([]gin.H, 0, len(o.Products))
	for _, item := range o.Products {
		line := gin.H{
			"productId": item.ProductID.ID,
			"quantity":  item.Quantity,
		}
		if item.Size != "" {
			line["size"] = item.Size
		}
		if p := s.findProduct(item.ProductID.ID); p != nil {
			line["productId"] = *p
		}
		items = append(items, line)
	}
	doc["products"] = items
	return doc
}

// findProduct returns a pointer into the product table. Caller must hold
// s.mu.
func (s *Server) findProduct(id string) *models.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}
