package coupon

import (
	"context"
	"fmt"
	"strings"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
)

// Redeemer resolves coupon codes to credit grants. The usage-limit
// check and the used_count increment are one conditional claim, so two
// concurrent redemptions of a coupon's last slot cannot both pass.
//
// With the persisted registry the claim runs inside the same storage
// transaction as the credit: used_count moves only when the ledger
// entry commits. An in-process registry cannot join that transaction,
// so its claimed slot is released again when the credit fails.
type Redeemer struct {
	uow          persistence.UnitOfWork
	registry     persistence.CouponRepository // in-process registry; nil when the claim joins the unit of work
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRedeemer creates a Redeemer over the persisted coupon registry
func NewRedeemer(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Redeemer {
	return &Redeemer{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// NewStaticRedeemer creates a Redeemer over an in-process registry
func NewStaticRedeemer(
	registry persistence.CouponRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Redeemer {
	return &Redeemer{
		uow:          uow,
		registry:     registry,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Redeem consumes one usage slot of the coupon and credits its amount
// to the user with type coupon.
func (r *Redeemer) Redeem(ctx context.Context, userID uint64, code string) (*entity.CreditTransaction, *entity.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil, errs.NewInvalidCouponError(code, "empty code")
	}
	if userID == 0 {
		return nil, nil, errs.ErrInvalidUserID
	}

	if r.registry != nil {
		return r.redeemStatic(ctx, userID, code)
	}
	return r.redeemPersisted(ctx, userID, code)
}

// redeemPersisted claims and credits in one storage transaction
func (r *Redeemer) redeemPersisted(ctx context.Context, userID uint64, code string) (*entity.CreditTransaction, *entity.User, error) {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin redemption transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
				r.logger.Error("Failed to roll back redemption transaction", map[string]any{
					"user_id": userID,
					"code":    code,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	claimed, err := r.uow.GetCouponRepository(txCtx).Claim(txCtx, code, r.timeProvider.Now())
	if err != nil {
		return nil, nil, r.claimRejected(userID, code, err)
	}

	txn, user, err := r.credit(txCtx, userID, claimed, code)
	if err != nil {
		return nil, nil, err
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return nil, nil, errs.NewLedgerError(userID, claimed.CreditAmount, string(entity.TypeCoupon), "commit failed", err)
	}
	committed = true

	r.logRedeemed(userID, code, claimed.CreditAmount, user.Balance())
	return txn, user, nil
}

// redeemStatic claims against the in-process registry, then credits in
// its own storage transaction. A failed credit hands the slot back so
// the registry's accounting matches the ledger.
func (r *Redeemer) redeemStatic(ctx context.Context, userID uint64, code string) (*entity.CreditTransaction, *entity.User, error) {
	claimed, err := r.registry.Claim(ctx, code, r.timeProvider.Now())
	if err != nil {
		return nil, nil, r.claimRejected(userID, code, err)
	}

	txn, user, err := r.creditClaimed(ctx, userID, claimed, code)
	if err != nil {
		r.release(ctx, userID, code)
		return nil, nil, err
	}

	r.logRedeemed(userID, code, claimed.CreditAmount, user.Balance())
	return txn, user, nil
}

// creditClaimed runs the ledger side of a static redemption as its own
// atomic unit.
func (r *Redeemer) creditClaimed(ctx context.Context, userID uint64, claimed *entity.Coupon, code string) (*entity.CreditTransaction, *entity.User, error) {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin redemption transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
				r.logger.Error("Failed to roll back redemption transaction", map[string]any{
					"user_id": userID,
					"code":    code,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	txn, user, err := r.credit(txCtx, userID, claimed, code)
	if err != nil {
		return nil, nil, err
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return nil, nil, errs.NewLedgerError(userID, claimed.CreditAmount, string(entity.TypeCoupon), "commit failed", err)
	}
	committed = true

	return txn, user, nil
}

// credit applies the coupon's amount and appends the transaction row
// within the caller's open unit of work.
func (r *Redeemer) credit(txCtx context.Context, userID uint64, claimed *entity.Coupon, code string) (*entity.CreditTransaction, *entity.User, error) {
	user, err := r.uow.GetUserRepository(txCtx).ApplyDelta(txCtx, userID, claimed.CreditAmount)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, nil, err
		}
		return nil, nil, errs.NewLedgerError(userID, claimed.CreditAmount, string(entity.TypeCoupon), "balance mutation failed", err)
	}

	txn, err := entity.NewCreditTransaction(userID, claimed.CreditAmount, entity.TypeCoupon, "coupon:"+code, r.timeProvider)
	if err != nil {
		return nil, nil, err
	}
	txn.ResultBalance = user.Balance()

	if err := r.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		return nil, nil, errs.NewLedgerError(userID, claimed.CreditAmount, string(entity.TypeCoupon), "transaction append failed", err)
	}

	return txn, user, nil
}

// claimRejected logs a refused claim and passes the error through
func (r *Redeemer) claimRejected(userID uint64, code string, err error) error {
	if errs.IsInvalidCouponError(err) {
		r.logger.Warn("Coupon redemption rejected", map[string]any{
			"user_id": userID,
			"code":    code,
			"error":   err.Error(),
		})
	}
	return err
}

// release hands an in-process slot back after a failed credit
func (r *Redeemer) release(ctx context.Context, userID uint64, code string) {
	if err := r.registry.Unclaim(ctx, code); err != nil {
		r.logger.Error("Failed to release coupon slot after credit failure", map[string]any{
			"user_id": userID,
			"code":    code,
			"error":   err.Error(),
		})
	}
}

func (r *Redeemer) logRedeemed(userID uint64, code string, creditAmount, newBalance int64) {
	r.logger.Info("Coupon redeemed", map[string]any{
		"user_id":       userID,
		"code":          code,
		"credit_amount": creditAmount,
		"new_balance":   newBalance,
	})
}
