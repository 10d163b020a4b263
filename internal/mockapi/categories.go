package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glitzzera/admin-core/internal/models"
)

func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.categories
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) createCategory(c *gin.Context) {
	catname := c.PostForm("catname")
	if catname == "" {
		errorJSON(c, http.StatusBadRequest, "catname is required")
		return
	}

	category := models.Category{
		ID:      newID(),
		CatName: catname,
		Status:  c.PostForm("status") == "true",
	}
	if fh, err := c.FormFile("image"); err == nil {
		category.Image = "/uploads/" + fh.Filename
	}

	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if v, ok := c.GetPostForm("catname"); ok {
			s.categories[i].CatName = v
		}
		if v, ok := c.GetPostForm("status"); ok {
			s.categories[i].Status = v == "true"
		}
		if fh, err := c.FormFile("image"); err == nil {
			s.categories[i].Image = "/uploads/" + fh.Filename
		}
		c.JSON(http.StatusOK, s.categories[i])
		return
	}
	errorJSON(c, http.StatusNotFound, "category not found")
}

func (s *Server) deleteCategory(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
			return
		}
	}
	errorJSON(c, http.StatusNotFound, "category not found")
}
