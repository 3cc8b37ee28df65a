package ledger

import (
	"context"
	"fmt"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
)

// Recorder is the Transaction Recorder: it validates a signed credit
// movement and applies it to the ledger store as one atomic unit, the
// balance mutation and the transaction-log append committing together.
type Recorder struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRecorder creates a new Recorder
func NewRecorder(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Recorder {
	return &Recorder{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Record appends a credit movement for the given cause. The amount is
// validated against the cause before any storage work: usage must be
// negative, purchase/coupon/refund positive, admin_add either sign.
// On failure nothing is persisted.
func (r *Recorder) Record(
	ctx context.Context,
	userID uint64,
	amount int64,
	txType entity.TransactionType,
	note string,
) (*entity.CreditTransaction, *entity.User, error) {
	txn, err := entity.NewCreditTransaction(userID, amount, txType, note, r.timeProvider)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid credit movement: %w", err)
	}

	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin ledger transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
				r.logger.Error("Failed to roll back ledger transaction", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	user, err := r.uow.GetUserRepository(txCtx).ApplyDelta(txCtx, userID, amount)
	if err != nil {
		if errs.IsInsufficientCreditError(err) || errs.IsUserNotFoundError(err) {
			return nil, nil, err
		}
		return nil, nil, errs.NewLedgerError(userID, amount, string(txType), "balance mutation failed", err)
	}

	txn.ResultBalance = user.Balance()
	if err := r.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		return nil, nil, errs.NewLedgerError(userID, amount, string(txType), "transaction append failed", err)
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return nil, nil, errs.NewLedgerError(userID, amount, string(txType), "commit failed", err)
	}
	committed = true

	r.logger.Info("Credit movement recorded", map[string]any{
		"user_id":        userID,
		"amount":         amount,
		"tx_type":        string(txType),
		"result_balance": txn.ResultBalance,
		"public_id":      txn.PublicID,
	})

	return txn, user, nil
}
