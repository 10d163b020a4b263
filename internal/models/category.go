package models

// Category represents a product category.
type Category struct {
	ID      string `json:"_id"`
	CatName string `json:"catname"`
	Image   string `json:"image,omitempty"`
	Status  bool   `json:"status"`
}
