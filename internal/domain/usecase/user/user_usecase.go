package user

import (
	"context"
	"fmt"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
)

// History paging bounds
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// UserUseCase provides the read-only surface over users and their history
type UserUseCase struct {
	users        persistence.UserRepository
	transactions persistence.TransactionRepository
	approvals    persistence.ApprovalRepository
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	users persistence.UserRepository,
	transactions persistence.TransactionRepository,
	approvals persistence.ApprovalRepository,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		users:        users,
		transactions: transactions,
		approvals:    approvals,
		logger:       logger,
	}
}

// GetUser retrieves a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.users.GetByID(ctx, userID)
}

// GetBalance returns the user's current credit balance
func (u *UserUseCase) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Balance(), nil
}

// ListTransactions returns a page of the user's credit transactions, newest first
func (u *UserUseCase) ListTransactions(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.CreditTransaction, int64, error) {
	if userID == 0 {
		return nil, 0, errs.ErrInvalidUserID
	}
	return u.transactions.ListByUser(ctx, userID, ClampPage(page))
}

// GetTransaction retrieves one of the user's transactions by public
// identifier. Ownership is checked after the read; a foreign row is
// reported as not found so the identifier leaks nothing.
func (u *UserUseCase) GetTransaction(ctx context.Context, userID uint64, publicID string) (*entity.CreditTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if publicID == "" {
		return nil, errs.ErrTransactionNotFound
	}

	txn, err := u.transactions.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, errs.ErrTransactionNotFound
	}
	return txn, nil
}

// ListApprovals returns a page of the user's approvals, newest first
func (u *UserUseCase) ListApprovals(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.Approval, int64, error) {
	if userID == 0 {
		return nil, 0, errs.ErrInvalidUserID
	}
	return u.approvals.ListByUser(ctx, userID, ClampPage(page))
}

// VerifyLedgerConsistency checks the core invariant for one user: the
// balance must equal the sum of the user's transaction amounts.
func (u *UserUseCase) VerifyLedgerConsistency(ctx context.Context, userID uint64) error {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	sum, err := u.transactions.SumAmounts(ctx, userID)
	if err != nil {
		return err
	}

	if user.Balance() != sum {
		u.logger.Error("Ledger consistency violation", map[string]any{
			"user_id":    userID,
			"balance":    user.Balance(),
			"ledger_sum": sum,
		})
		return fmt.Errorf("%w: balance %d does not match ledger sum %d for user %d",
			errs.ErrInternalServer, user.Balance(), sum, userID)
	}
	return nil
}

// ClampPage normalizes a page request into the allowed bounds
func ClampPage(page persistence.Page) persistence.Page {
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = DefaultPageSize
	}
	if page.Size > MaxPageSize {
		page.Size = MaxPageSize
	}
	return page
}
