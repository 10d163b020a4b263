package mockapi

import (
	"time"

	"github.com/glitzzera/admin-core/internal/models"
)

// Fixture IDs are stable so dev tooling and docs can reference them.
const (
	FixtureCategoryRings  = "64a1b2c3d4e5f67890120001"
	FixtureCategoryChains = "64a1b2c3d4e5f67890120002"
	FixtureUserPriya      = "60c72b2f9b1e8b0015f8e1a0"
	FixtureAddressPriya   = "60c72b2f9b1e8b0015f8e1a1"
)

// SampleCategories returns the seed categories for the dev backend.
func SampleCategories() []models.Category {
	return []models.Category{
		{ID: FixtureCategoryRings, CatName: "Rings", Status: true},
		{ID: FixtureCategoryChains, CatName: "Chains", Status: true},
	}
}

// SampleProducts returns a small jewelry catalog covering the stat edge
// cases: active, inactive, low-stock, and out-of-stock items.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            "64a1b2c3d4e5f67890110001",
			ShortTitle:    "Rose Gold Ring",
			LongTitle:     "Rose Gold Plated Solitaire Ring",
			ShortDesc:     "Minimal rose gold solitaire",
			Price:         1299,
			DiscountPrice: 999,
			StockQty:      25,
			Status:        true,
			Ratings:       4.6,
			Images:        []string{"/uploads/rose-gold-ring-1.jpg"},
			Sizes: []models.Size{
				{ID: "64a1b2c3d4e5f67890130001", SizeName: "6", StockQty: 10},
				{ID: "64a1b2c3d4e5f67890130002", SizeName: "7", StockQty: 15},
			},
			Category:  models.NewRef(FixtureCategoryRings),
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:         "64a1b2c3d4e5f67890110002",
			ShortTitle: "Silver Curb Chain",
			LongTitle:  "Oxidised Silver Curb Chain 20in",
			ShortDesc:  "Everyday oxidised chain",
			Price:      2499,
			StockQty:   4,
			Status:     true,
			Ratings:    4.2,
			Images:     []string{"/uploads/silver-chain-1.jpg"},
			Category:   models.NewRef(FixtureCategoryChains),
			CreatedAt:  time.Date(2024, 2, 20, 14, 45, 0, 0, time.UTC),
		},
		{
			ID:         "64a1b2c3d4e5f67890110003",
			ShortTitle: "Pearl Drop Pendant",
			LongTitle:  "Freshwater Pearl Drop Pendant",
			ShortDesc:  "Discontinued pearl pendant",
			Price:      1899,
			StockQty:   0,
			Status:     false,
			IsOOS:      true,
			Images:     []string{"/uploads/pearl-pendant-1.jpg"},
			Category:   models.NewRef(FixtureCategoryChains),
			CreatedAt:  time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC),
		},
	}
}

// SampleUsers returns the seed customers.
func SampleUsers() []models.User {
	return []models.User{
		{
			ID:        FixtureUserPriya,
			Name:      "Priya Sharma",
			Email:     "priya.sharma@gmail.com",
			Phone:     "+91 9876543210",
			Status:    true,
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "60c72b2f9b1e8b0015f8e1b0",
			Name:      "Rahul Gupta",
			Email:     "rahul.gupta@yahoo.com",
			Phone:     "+91 8765432109",
			Status:    true,
			CreatedAt: time.Date(2024, 2, 20, 14, 45, 0, 0, time.UTC),
		},
	}
}

// SampleAddresses returns the seed shipping addresses.
func SampleAddresses() []models.Address {
	return []models.Address{
		{
			ID:      FixtureAddressPriya,
			UserID:  FixtureUserPriya,
			Name:    "Priya Sharma",
			Phone:   "+91 9876543210",
			Street:  "14 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
	}
}
