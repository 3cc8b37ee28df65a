package dto

import (
	"time"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// RedeemRequest represents the API request for redeeming a coupon
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// RedeemResponse represents the API response for a successful redemption
type RedeemResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     int64               `json:"balance"`
}

// CreateCouponRequest represents the admin API request for creating a coupon
type CreateCouponRequest struct {
	Code         string `json:"code" binding:"required"`
	CreditAmount int64  `json:"creditAmount" binding:"required"`
	UsageLimit   uint64 `json:"usageLimit" binding:"required"`
	ExpiresAt    string `json:"expiresAt"`
}

// CouponResponse represents a coupon in admin API responses
type CouponResponse struct {
	Code         string     `json:"code"`
	CreditAmount int64      `json:"creditAmount"`
	UsageLimit   uint64     `json:"usageLimit"`
	UsedCount    uint64     `json:"usedCount"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	IsActive     bool       `json:"isActive"`
}

// NewCouponResponse converts a coupon entity to its API shape
func NewCouponResponse(coupon *entity.Coupon) CouponResponse {
	return CouponResponse{
		Code:         coupon.Code,
		CreditAmount: coupon.CreditAmount,
		UsageLimit:   coupon.UsageLimit,
		UsedCount:    coupon.UsedCount,
		ExpiresAt:    coupon.ExpiresAt,
		IsActive:     coupon.IsActive,
	}
}
