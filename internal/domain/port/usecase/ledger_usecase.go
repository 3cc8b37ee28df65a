package usecase

import (
	"context"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// LedgerRecorder validates and appends signed credit movements.
// Exactly one transaction is persisted and the balance updated within
// the same atomic unit, or nothing is persisted on failure.
type LedgerRecorder interface {
	Record(ctx context.Context, userID uint64, amount int64, txType entity.TransactionType, note string) (*entity.CreditTransaction, *entity.User, error)
}

// AdminAdjuster applies privileged signed adjustments with an audit note
type AdminAdjuster interface {
	Adjust(ctx context.Context, actorRole string, userID uint64, amount int64, note string) (*entity.CreditTransaction, *entity.User, error)
}

// CouponRedeemer resolves a coupon code to a credit grant. A usage
// slot is only consumed when its credit is recorded: the persisted
// registry claims inside the credit's storage transaction, the static
// one claims first and releases the slot when the credit fails.
type CouponRedeemer interface {
	Redeem(ctx context.Context, userID uint64, code string) (*entity.CreditTransaction, *entity.User, error)
}
