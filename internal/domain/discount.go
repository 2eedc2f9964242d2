package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount type constants.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Discount represents a discount code validated by the backend. The cart
// trusts whatever Discount it is handed; validation (minimum order amount,
// usage cap, validity window, active flag) happens upstream.
type Discount struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Name           MultilingualText `json:"name"`
	Description    MultilingualText `json:"description"`
	DiscountType   string           `json:"discount_type"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	MinOrderAmount decimal.Decimal  `json:"min_order_amount"`
	MaxUses        int              `json:"max_uses"`
	UsedCount      int              `json:"used_count"`
	IsActive       bool             `json:"is_active"`
	ValidFrom      time.Time        `json:"valid_from"`
	ValidUntil     *time.Time       `json:"valid_until,omitempty"`
}

// ValidDiscountTypes returns the set of valid discount types.
func ValidDiscountTypes() []string {
	return []string{DiscountTypePercentage, DiscountTypeFixed}
}

// IsValidDiscountType checks whether the given string is a valid discount type.
func IsValidDiscountType(t string) bool {
	for _, v := range ValidDiscountTypes() {
		if v == t {
			return true
		}
	}
	return false
}
