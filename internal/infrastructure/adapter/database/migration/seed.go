package migration

import (
	"context"
	"errors"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
)

// SeedDefaultUsers creates the given users with zero balance when they
// do not exist yet. Used in development so the service is usable
// without an upstream user store.
func SeedDefaultUsers(
	ctx context.Context,
	users persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	ids []uint64,
) error {
	for _, id := range ids {
		user, err := entity.NewUser(id, entity.RoleUser, 0, timeProvider)
		if err != nil {
			return err
		}

		if err := users.Create(ctx, user); err != nil {
			if errors.Is(err, errs.ErrDuplicateUser) {
				continue
			}
			return err
		}
		logger.Info("Seeded default user", map[string]any{"user_id": id})
	}
	return nil
}

// SeedCoupons inserts the given coupons when their codes are not
// present yet. Used when the persisted registry is bootstrapped from a
// static table in config.
func SeedCoupons(
	ctx context.Context,
	coupons persistence.CouponRepository,
	logger coreport.Logger,
	seed []*entity.Coupon,
) error {
	for _, coupon := range seed {
		if err := coupons.Create(ctx, coupon); err != nil {
			if errs.IsInvalidCouponError(err) {
				// Code already present from a previous boot.
				continue
			}
			return err
		}
		logger.Info("Seeded coupon", map[string]any{"code": coupon.Code})
	}
	return nil
}
