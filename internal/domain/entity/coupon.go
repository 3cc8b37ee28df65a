package entity

import (
	"strings"
	"time"

	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
)

// Coupon represents a redeemable credit grant. A coupon is redeemable
// iff it is active, unexpired and UsedCount < UsageLimit; the
// limit check and the UsedCount increment happen in one atomic claim.
type Coupon struct {
	ID           uint64     // Storage identifier
	Code         string     // Unique redemption code
	CreditAmount int64      // Credits granted per redemption
	UsageLimit   uint64     // Maximum number of redemptions
	UsedCount    uint64     // Redemptions consumed so far
	ExpiresAt    *time.Time // Expiry, nil for no expiry
	IsActive     bool       // Administrative kill switch
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCoupon creates a coupon with basic validation
func NewCoupon(code string, creditAmount int64, usageLimit uint64, expiresAt *time.Time) (*Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.NewInvalidCouponError(code, "empty code")
	}
	if creditAmount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if usageLimit == 0 {
		return nil, errs.NewInvalidCouponError(code, "usage limit must be positive")
	}

	return &Coupon{
		Code:         code,
		CreditAmount: creditAmount,
		UsageLimit:   usageLimit,
		IsActive:     true,
		ExpiresAt:    expiresAt,
	}, nil
}

// Redeemable reports whether the coupon can be redeemed at the given
// time, returning the failing check when it cannot.
func (c *Coupon) Redeemable(now time.Time) (bool, string) {
	if !c.IsActive {
		return false, "inactive"
	}
	if c.ExpiresAt != nil && !c.ExpiresAt.After(now) {
		return false, "expired"
	}
	if c.UsedCount >= c.UsageLimit {
		return false, "usage limit reached"
	}
	return true, ""
}
