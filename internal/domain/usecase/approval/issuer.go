package approval

import (
	"context"
	"fmt"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
)

// approvalCost is the number of credit units one approval consumes
const approvalCost = int64(1)

// Issuer issues approvals idempotently keyed by (userID, iidNumber).
//
// The existence check before the write is an optimization only: the
// storage-level uniqueness constraint over the pair is the
// authoritative guard. A writer that loses the uniqueness race rolls
// back its debit, re-reads and returns the winner's approval, so two
// concurrent calls for the same pair produce exactly one approval, one
// usage transaction and one balance decrement.
type Issuer struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewIssuer creates a new Issuer
func NewIssuer(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Issuer {
	return &Issuer{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Issue returns the existing approval for (userID, iidNumber) unchanged,
// or atomically debits one credit, appends the usage transaction and
// creates the approval. The bool reports whether this call created it.
func (i *Issuer) Issue(
	ctx context.Context,
	userID uint64,
	iidNumber string,
	confirmationNumber string,
) (*entity.Approval, bool, error) {
	approval, err := entity.NewApproval(userID, iidNumber, confirmationNumber, i.timeProvider)
	if err != nil {
		return nil, false, fmt.Errorf("invalid approval request: %w", err)
	}

	// Fast path: a repeat of an already-issued identifier returns the
	// stored approval without touching the ledger.
	existing, err := i.uow.GetApprovalRepository(ctx).GetByUserAndIID(ctx, userID, approval.IIDNumber)
	if err == nil {
		i.logger.Debug("Approval already issued, returning existing record", map[string]any{
			"user_id":    userID,
			"iid_number": approval.IIDNumber,
		})
		return existing, false, nil
	}
	if !errs.IsNotFoundError(err) {
		return nil, false, fmt.Errorf("failed to check existing approval: %w", err)
	}

	created, err := i.issueNew(ctx, approval)
	if err == nil {
		i.logger.Info("Approval issued", map[string]any{
			"user_id":     userID,
			"iid_number":  approval.IIDNumber,
			"approval_id": created.PublicID,
		})
		return created, true, nil
	}

	// A concurrent writer won the uniqueness race between our existence
	// check and our insert. Their approval is the one true record;
	// return it as if this call had been the repeat.
	if errs.IsDuplicateApprovalError(err) {
		winner, readErr := i.uow.GetApprovalRepository(ctx).GetByUserAndIID(ctx, userID, approval.IIDNumber)
		if readErr != nil {
			return nil, false, fmt.Errorf("failed to read winning approval after lost race: %w", readErr)
		}
		i.logger.Info("Lost approval uniqueness race, returning winner", map[string]any{
			"user_id":    userID,
			"iid_number": approval.IIDNumber,
		})
		return winner, false, nil
	}

	return nil, false, err
}

// issueNew performs the atomic unit: approval insert, one-credit debit
// and usage transaction append commit together or not at all. The
// approval insert goes first so a duplicate-key rejection aborts the
// unit before any balance work.
func (i *Issuer) issueNew(ctx context.Context, approval *entity.Approval) (*entity.Approval, error) {
	txCtx, err := i.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin issuance transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := i.uow.Rollback(txCtx); rbErr != nil {
				i.logger.Error("Failed to roll back issuance transaction", map[string]any{
					"user_id":    approval.UserID,
					"iid_number": approval.IIDNumber,
					"error":      rbErr.Error(),
				})
			}
		}
	}()

	if err := i.uow.GetApprovalRepository(txCtx).Create(txCtx, approval); err != nil {
		return nil, err
	}

	user, err := i.uow.GetUserRepository(txCtx).ApplyDelta(txCtx, approval.UserID, -approvalCost)
	if err != nil {
		if errs.IsInsufficientCreditError(err) {
			i.logger.Warn("Approval rejected, no credit to spend", map[string]any{
				"user_id":    approval.UserID,
				"iid_number": approval.IIDNumber,
			})
			return nil, fmt.Errorf("%w: %s", errs.ErrInsufficientCredit, err.Error())
		}
		return nil, err
	}

	usage, err := entity.NewCreditTransaction(
		approval.UserID,
		-approvalCost,
		entity.TypeUsage,
		"approval:"+approval.IIDNumber,
		i.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	usage.ResultBalance = user.Balance()

	if err := i.uow.GetTransactionRepository(txCtx).Create(txCtx, usage); err != nil {
		return nil, err
	}

	if err := i.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit issuance: %w", err)
	}
	committed = true

	return approval, nil
}
