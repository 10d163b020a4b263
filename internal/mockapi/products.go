package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glitzzera/admin-core/internal/models"
)

// listProducts returns the catalog with server-computed dashboard counters.
func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.ComputeProductStats(s.products)
	c.JSON(http.StatusOK, gin.H{
		"products":        s.products,
		"totalCount":      stats.TotalProducts,
		"activeCount":     stats.ActiveProducts,
		"outOfStockCount": stats.OutOfStock,
		"lowStockCount":   stats.LowStock,
	})
}

func (s *Server) listProductsByCategory(c *gin.Context) {
	categoryID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Product{}
	for _, p := range s.products {
		if p.Category.ID == categoryID {
			matched = append(matched, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"products": matched})
}

// updateProduct applies a multipart form edit: scalar fields, kept image
// URLs, uploaded files (stored as fake /uploads URLs), and the JSON-encoded
// sizes array.
func (s *Server) updateProduct(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		errorJSON(c, http.StatusNotFound, "product not found")
		return
	}

	p := &s.products[idx]
	if v, ok := c.GetPostForm("shortTitle"); ok {
		p.ShortTitle = v
	}
	if v, ok := c.GetPostForm("longTitle"); ok {
		p.LongTitle = v
	}
	if v, ok := c.GetPostForm("shortDesc"); ok {
		p.ShortDesc = v
	}
	if v, ok := c.GetPostForm("longDesc"); ok {
		p.LongDesc = v
	}
	if v, ok := c.GetPostForm("video"); ok {
		p.Video = v
	}
	if v, ok := c.GetPostForm("price"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid price")
			return
		}
		p.Price = f
	}
	if v, ok := c.GetPostForm("discountPrice"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid discountPrice")
			return
		}
		p.DiscountPrice = f
	}
	if v, ok := c.GetPostForm("stockQty"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errorJSON(c, http.StatusBadRequest, "invalid stockQty")
			return
		}
		p.StockQty = n
	}
	if v, ok := c.GetPostForm("status"); ok {
		p.Status = v == "true"
	}
	if v, ok := c.GetPostForm("sizes"); ok {
		var sizes []models.Size
		if err := json.Unmarshal([]byte(v), &sizes); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid sizes payload")
			return
		}
		for i := range sizes {
			if sizes[i].ID == "" {
				sizes[i].ID = newID()
			}
		}
		p.Sizes = sizes
	}

	images := c.PostFormArray("images")
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			images = append(images, "/uploads/"+fh.Filename)
		}
	}
	if images != nil {
		p.Images = images
	}

	p.IsOOS = p.StockQty == 0
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
			return
		}
	}
	errorJSON(c, http.StatusNotFound, "product not found")
}
