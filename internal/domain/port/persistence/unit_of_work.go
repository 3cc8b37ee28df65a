package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes across
// repositories so that a public operation commits as one atomic unit
// against the ledger store, or not at all.
type UnitOfWork interface {
	// Begin starts a new storage transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetApprovalRepository returns an approval repository bound to the current transaction
	GetApprovalRepository(ctx context.Context) ApprovalRepository

	// GetCouponRepository returns the persisted coupon registry bound
	// to the current transaction, so a slot claim can commit together
	// with the credit it produces
	GetCouponRepository(ctx context.Context) CouponRepository
}
