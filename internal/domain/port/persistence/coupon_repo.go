package persistence

import (
	"context"
	"time"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// CouponRepository defines methods to interact with the coupon registry.
// Both the persisted table and the static in-process registry implement
// this interface; the redeemer does not know which one it talks to.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its redemption code
	//
	// Possible errors:
	// - ErrInvalidCoupon: If no coupon carries the code
	// - ErrDatabaseConnection: If database connection fails
	GetByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// Claim atomically consumes one usage slot: the redeemability check
	// (active, unexpired, used_count < usage_limit) and the used_count
	// increment are a single conditional write. Returns the coupon as it
	// was claimed.
	//
	// Possible errors:
	// - ErrInvalidCoupon: If the coupon is absent, inactive, expired or exhausted
	// - ErrDatabaseConnection: If database connection fails
	Claim(ctx context.Context, code string, now time.Time) (*entity.Coupon, error)

	// Unclaim releases a previously claimed slot. Called only when the
	// credit that should follow a claim could not be recorded.
	//
	// Possible errors:
	// - ErrInvalidCoupon: If no coupon carries the code
	// - ErrDatabaseConnection: If database connection fails
	Unclaim(ctx context.Context, code string) error

	// Create persists a new coupon
	//
	// Possible errors:
	// - ErrInvalidCoupon: If a coupon with the same code already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, coupon *entity.Coupon) error
}
