package admin

import (
	"context"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/usecase"
)

// Adjuster is the privileged wrapper over the Transaction Recorder.
// Adjustments may carry either sign, but a negative adjustment that
// would drive the balance below zero is still rejected: admins cannot
// force a negative balance.
type Adjuster struct {
	recorder usecase.LedgerRecorder
	logger   coreport.Logger
}

// NewAdjuster creates a new Adjuster
func NewAdjuster(recorder usecase.LedgerRecorder, logger coreport.Logger) *Adjuster {
	return &Adjuster{
		recorder: recorder,
		logger:   logger,
	}
}

// Adjust records a signed admin adjustment with an audit note
func (a *Adjuster) Adjust(
	ctx context.Context,
	actorRole string,
	userID uint64,
	amount int64,
	note string,
) (*entity.CreditTransaction, *entity.User, error) {
	if actorRole != entity.RoleAdmin {
		a.logger.Warn("Adjustment rejected for non-admin actor", map[string]any{
			"actor_role": actorRole,
			"user_id":    userID,
		})
		return nil, nil, errs.ErrForbidden
	}

	txn, user, err := a.recorder.Record(ctx, userID, amount, entity.TypeAdminAdd, note)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("Admin adjustment recorded", map[string]any{
		"user_id":     userID,
		"amount":      amount,
		"note":        note,
		"new_balance": user.Balance(),
	})

	return txn, user, nil
}
