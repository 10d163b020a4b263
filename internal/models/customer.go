package models

import "time"

// User is a customer profile.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// WishlistItem is a product saved to a customer's wishlist.
type WishlistItem struct {
	ID        string    `json:"_id"`
	ProductID Ref       `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// Customer is the server-assembled aggregate returned by /api/users/info:
// the user profile together with their orders and wishlist.
type Customer struct {
	User          User           `json:"user"`
	Orders        []Order        `json:"orders"`
	WishlistItems []WishlistItem `json:"wishlistItems"`
}

// Address is a customer shipping address.
type Address struct {
	ID      string `json:"_id"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}
