package models

// Coupon status values as stored by the backend.
const (
	CouponStatusActive   = "active"
	CouponStatusInactive = "inactive"
)

// Coupon represents a discount coupon. times_used is maintained server-side
// and must never exceed limit_of_use.
type Coupon struct {
	ID         string  `json:"_id"`
	Title      string  `json:"title"`
	Desc       string  `json:"desc"`
	CouponCode string  `json:"couponCode"`
	Amount     float64 `json:"amount"`
	LimitOfUse int     `json:"limit_of_use"`
	TimesUsed  int     `json:"times_used"`
	Status     string  `json:"status"`
	Image      string  `json:"image,omitempty"`
}
