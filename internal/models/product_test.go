package models

import "testing"

func TestComputeProductStats(t *testing.T) {
	products := []Product{
		{StockQty: 5, Status: true, IsOOS: false},
		{StockQty: 20, Status: false, IsOOS: true},
	}

	stats := ComputeProductStats(products)

	if stats.TotalProducts != 2 {
		t.Errorf("expected TotalProducts 2, got %d", stats.TotalProducts)
	}
	if stats.ActiveProducts != 1 {
		t.Errorf("expected ActiveProducts 1, got %d", stats.ActiveProducts)
	}
	if stats.OutOfStock != 1 {
		t.Errorf("expected OutOfStock 1, got %d", stats.OutOfStock)
	}
	if stats.LowStock != 1 {
		t.Errorf("expected LowStock 1, got %d", stats.LowStock)
	}
}

func TestComputeProductStatsActiveInactiveSum(t *testing.T) {
	products := []Product{
		{StockQty: 5, Status: true},
		{StockQty: 0, Status: false, IsOOS: true},
		{StockQty: 100, Status: true},
		{StockQty: 9, Status: false},
	}

	stats := ComputeProductStats(products)

	inactive := stats.TotalProducts - stats.ActiveProducts
	if stats.ActiveProducts+inactive != stats.TotalProducts {
		t.Errorf("active (%d) + inactive (%d) != total (%d)",
			stats.ActiveProducts, inactive, stats.TotalProducts)
	}
	if stats.LowStock != 3 {
		t.Errorf("expected LowStock 3 (qty < 10), got %d", stats.LowStock)
	}
}

func TestComputeProductStatsEmpty(t *testing.T) {
	stats := ComputeProductStats(nil)
	if stats != (ProductStats{}) {
		t.Errorf("expected zero stats for empty catalog, got %+v", stats)
	}
}
