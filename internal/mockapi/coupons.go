package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glitzzera/admin-core/internal/models"
)

func (s *Server) listCoupons(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coupons := s.coupons
	if coupons == nil {
		coupons = []models.Coupon{}
	}
	c.JSON(http.StatusOK, coupons)
}

func (s *Server) createCoupon(c *gin.Context) {
	title := c.PostForm("title")
	code := c.PostForm("couponCode")
	if title == "" || code == "" {
		errorJSON(c, http.StatusBadRequest, "title and couponCode are required")
		return
	}

	amount, err := strconv.ParseFloat(c.DefaultPostForm("amount", "0"), 64)
	if err != nil || amount < 0 {
		errorJSON(c, http.StatusBadRequest, "invalid amount")
		return
	}
	limit, err := strconv.Atoi(c.DefaultPostForm("limit_of_use", "0"))
	if err != nil || limit < 0 {
		errorJSON(c, http.StatusBadRequest, "invalid limit_of_use")
		return
	}

	status := c.DefaultPostForm("status", models.CouponStatusActive)
	if status != models.CouponStatusActive && status != models.CouponStatusInactive {
		errorJSON(c, http.StatusBadRequest, "invalid status")
		return
	}

	coupon := models.Coupon{
		ID:         newID(),
		Title:      title,
		Desc:       c.PostForm("desc"),
		CouponCode: code,
		Amount:     amount,
		LimitOfUse: limit,
		TimesUsed:  0,
		Status:     status,
	}
	if fh, err := c.FormFile("image"); err == nil {
		coupon.Image = "/uploads/" + fh.Filename
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.coupons {
		if existing.CouponCode == code {
			errorJSON(c, http.StatusBadRequest, "couponCode already exists")
			return
		}
	}
	s.coupons = append(s.coupons, coupon)
	c.JSON(http.StatusCreated, coupon)
}

func (s *Server) updateCoupon(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coupons {
		if s.coupons[i].ID != id {
			continue
		}
		if v, ok := c.GetPostForm("title"); ok {
			s.coupons[i].Title = v
		}
		if v, ok := c.GetPostForm("desc"); ok {
			s.coupons[i].Desc = v
		}
		if v, ok := c.GetPostForm("amount"); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 0 {
				errorJSON(c, http.StatusBadRequest, "invalid amount")
				return
			}
			s.coupons[i].Amount = f
		}
		if v, ok := c.GetPostForm("limit_of_use"); ok {
			n, err := strconv.Atoi(v)
			if err != nil || n < s.coupons[i].TimesUsed {
				errorJSON(c, http.StatusBadRequest, "limit_of_use below current usage")
				return
			}
			s.coupons[i].LimitOfUse = n
		}
		if v, ok := c.GetPostForm("status"); ok {
			if v != models.CouponStatusActive && v != models.CouponStatusInactive {
				errorJSON(c, http.StatusBadRequest, "invalid status")
				return
			}
			s.coupons[i].Status = v
		}
		if fh, err := c.FormFile("image"); err == nil {
			s.coupons[i].Image = "/uploads/" + fh.Filename
		}
		c.JSON(http.StatusOK, s.coupons[i])
		return
	}
	errorJSON(c, http.StatusNotFound, "coupon not found")
}

func (s *Server) deleteCoupon(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coupons {
		if s.coupons[i].ID == id {
			s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "coupon deleted"})
			return
		}
	}
	errorJSON(c, http.StatusNotFound, "coupon not found")
}
