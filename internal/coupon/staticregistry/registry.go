// Package staticregistry provides an in-process coupon registry backed
// by a fixed table, implementing the same CouponRepository port as the
// persisted registry. It exists for deployments that hand out a small,
// config-defined set of codes and do not want them in the database.
package staticregistry

import (
	"context"
	"sync"
	"time"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
)

// Registry is a mutex-guarded static coupon table. The mutex makes the
// limit check and the used-count increment one atomic claim, mirroring
// the conditional UPDATE of the persisted registry.
type Registry struct {
	mu      sync.Mutex
	coupons map[string]*entity.Coupon
}

// New creates a registry over the given coupons. Later duplicates of a
// code replace earlier ones.
func New(coupons []*entity.Coupon) *Registry {
	table := make(map[string]*entity.Coupon, len(coupons))
	for _, c := range coupons {
		cp := *c
		table[cp.Code] = &cp
	}
	return &Registry{coupons: table}
}

// GetByCode retrieves a copy of the coupon with the given code
func (r *Registry) GetByCode(_ context.Context, code string) (*entity.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[code]
	if !ok {
		return nil, errs.NewInvalidCouponError(code, "unknown code")
	}
	cp := *coupon
	return &cp, nil
}

// Claim atomically consumes one usage slot
func (r *Registry) Claim(_ context.Context, code string, now time.Time) (*entity.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[code]
	if !ok {
		return nil, errs.NewInvalidCouponError(code, "unknown code")
	}
	if ok, reason := coupon.Redeemable(now); !ok {
		return nil, errs.NewInvalidCouponError(code, reason)
	}

	coupon.UsedCount++
	coupon.UpdatedAt = now
	cp := *coupon
	return &cp, nil
}

// Unclaim releases a previously claimed slot
func (r *Registry) Unclaim(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[code]
	if !ok {
		return errs.NewInvalidCouponError(code, "unknown code")
	}
	if coupon.UsedCount == 0 {
		return errs.NewInvalidCouponError(code, "no claimed slot to release")
	}
	coupon.UsedCount--
	return nil
}

// Create adds a coupon to the table
func (r *Registry) Create(_ context.Context, coupon *entity.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[coupon.Code]; ok {
		return errs.NewInvalidCouponError(coupon.Code, "code already exists")
	}
	cp := *coupon
	r.coupons[cp.Code] = &cp
	return nil
}
