package models

import "time"

// LowStockThreshold is the stock quantity below which a product counts as
// low stock in the dashboard statistics.
const LowStockThreshold = 10

// Size is a per-size stock entry of a product (ring sizes, chain lengths).
type Size struct {
	ID       string `json:"_id,omitempty"`
	SizeName string `json:"sizeName"`
	StockQty int    `json:"stockQty"`
	IsOOS    bool   `json:"is_oos"`
}

// Product represents a catalog product as returned by the backend.
type Product struct {
	ID            string    `json:"_id"`
	ShortTitle    string    `json:"shortTitle"`
	LongTitle     string    `json:"longTitle"`
	ShortDesc     string    `json:"shortDesc"`
	LongDesc      string    `json:"longDesc"`
	Price         float64   `json:"price"`
	DiscountPrice float64   `json:"discountPrice"`
	StockQty      int       `json:"stockQty"`
	Status        bool      `json:"status"`
	IsOOS         bool      `json:"is_oos"`
	Ratings       float64   `json:"ratings"`
	Images        []string  `json:"images"`
	Video         string    `json:"video,omitempty"`
	Sizes         []Size    `json:"sizes"`
	Category      Ref       `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductStats holds the dashboard counters for the product catalog.
type ProductStats struct {
	TotalProducts  int `json:"totalProducts"`
	ActiveProducts int `json:"activeProducts"`
	OutOfStock     int `json:"outOfStock"`
	LowStock       int `json:"lowStock"`
}

// ComputeProductStats derives the dashboard counters from a product list.
// Used as the fallback when the backend payload does not carry counts.
func ComputeProductStats(products []Product) ProductStats {
	stats := ProductStats{TotalProducts: len(products)}
	for _, p := range products {
		if p.Status {
			stats.ActiveProducts++
		}
		if p.IsOOS {
			stats.OutOfStock++
		}
		if p.StockQty < LowStockThreshold {
			stats.LowStock++
		}
	}
	return stats
}
