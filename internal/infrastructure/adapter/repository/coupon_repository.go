package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/model"
)

// CouponRepository implements the persistence.CouponRepository port
// using GORM for persisted, expirable coupons.
type CouponRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCouponRepository creates a new CouponRepository instance
func NewCouponRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CouponRepository {
	return &CouponRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a coupon entity to a database model
func (r *CouponRepository) entityToModel(coupon *entity.Coupon) model.Coupon {
	return model.Coupon{
		Code:         coupon.Code,
		CreditAmount: coupon.CreditAmount,
		UsageLimit:   coupon.UsageLimit,
		UsedCount:    coupon.UsedCount,
		ExpiresAt:    coupon.ExpiresAt,
		IsActive:     coupon.IsActive,
	}
}

// modelToEntity converts a coupon model to an entity
func (r *CouponRepository) modelToEntity(m *model.Coupon) *entity.Coupon {
	return &entity.Coupon{
		ID:           m.ID,
		Code:         m.Code,
		CreditAmount: m.CreditAmount,
		UsageLimit:   m.UsageLimit,
		UsedCount:    m.UsedCount,
		ExpiresAt:    m.ExpiresAt,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByCode retrieves a coupon by its redemption code
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponModel model.Coupon
	result := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewInvalidCouponError(code, "unknown code")
		}
		r.logger.Error("Failed to get coupon", map[string]any{
			"code":  code,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&couponModel), nil
}

// Claim consumes one usage slot as a single conditional UPDATE: the
// redeemability checks live in the WHERE clause, so two concurrent
// redemptions of the last slot cannot both pass the limit.
func (r *CouponRepository) Claim(ctx context.Context, code string, now time.Time) (*entity.Coupon, error) {
	result := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("code = ? AND is_active = ? AND used_count < usage_limit AND (expires_at IS NULL OR expires_at > ?)",
			code, true, now).
		Updates(map[string]interface{}{
			"used_count": gorm.Expr("used_count + 1"),
			"updated_at": now,
		})

	if result.Error != nil {
		r.logger.Error("Failed to claim coupon slot", map[string]any{
			"code":  code,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		// The guard rejected the claim; read the row to name the failing check.
		coupon, err := r.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if ok, reason := coupon.Redeemable(now); !ok {
			return nil, errs.NewInvalidCouponError(code, reason)
		}
		// The coupon looked redeemable on re-read: the claim lost to a
		// concurrent redemption of the last slot and the slot came back.
		return nil, errs.NewInvalidCouponError(code, "usage limit reached")
	}

	return r.GetByCode(ctx, code)
}

// Unclaim releases a previously claimed slot
func (r *CouponRepository) Unclaim(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("code = ? AND used_count > 0", code).
		Updates(map[string]interface{}{
			"used_count": gorm.Expr("used_count - 1"),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidCouponError(code, "no claimed slot to release")
	}
	return nil
}

// Create persists a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponModel := r.entityToModel(coupon)

	result := r.db.WithContext(ctx).Create(&couponModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.NewInvalidCouponError(coupon.Code, "code already exists")
		}
		r.logger.Error("Failed to create coupon", map[string]any{
			"code":  coupon.Code,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	coupon.ID = couponModel.ID
	coupon.CreatedAt = couponModel.CreatedAt
	coupon.UpdatedAt = couponModel.UpdatedAt

	r.logger.Info("Coupon created", map[string]any{
		"code":          coupon.Code,
		"credit_amount": coupon.CreditAmount,
		"usage_limit":   coupon.UsageLimit,
	})
	return nil
}
