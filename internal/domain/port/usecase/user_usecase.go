package usecase

import (
	"context"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
)

// UserQueries provides the read-only surface over users and their history
type UserQueries interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// GetBalance returns the user's current credit balance
	GetBalance(ctx context.Context, userID uint64) (int64, error)

	// ListTransactions returns a page of the user's credit transactions,
	// newest first, along with the total row count
	ListTransactions(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.CreditTransaction, int64, error)

	// GetTransaction retrieves one of the user's transactions by its
	// public identifier. A transaction belonging to another user is
	// reported as not found.
	GetTransaction(ctx context.Context, userID uint64, publicID string) (*entity.CreditTransaction, error)

	// ListApprovals returns a page of the user's approvals, newest first,
	// along with the total row count
	ListApprovals(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.Approval, int64, error)
}
