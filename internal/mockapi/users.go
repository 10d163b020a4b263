package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glitzzera/admin-core/internal/models"
)

// listCustomers assembles the per-user aggregate the customers page
// consumes: profile, the user's orders, and their wishlist.
func (s *Server) listCustomers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detailed := make([]models.Customer, 0, len(s.users))
	for _, u := range s.users {
		var userOrders []models.Order
		for _, o := range s.orders {
			if o.UserID.ID == u.ID {
				userOrders = append(userOrders, o)
			}
		}
		detailed = append(detailed, models.Customer{
			User:          u,
			Orders:        userOrders,
			WishlistItems: s.wishlists[u.ID],
		})
	}
	c.JSON(http.StatusOK, gin.H{"detailedUsers": detailed})
}

func (s *Server) listAddresses(c *gin.Context) {
	userID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Address{}
	for _, a := range s.addresses {
		if a.UserID == userID {
			matched = append(matched, a)
		}
	}
	c.JSON(http.StatusOK, matched)
}
