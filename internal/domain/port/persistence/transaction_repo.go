package persistence

import (
	"context"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// Page describes a limit/offset window over a history listing
type Page struct {
	Number int // 1-based page number
	Size   int // rows per page
}

// Offset returns the row offset for the page
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// TransactionRepository defines methods to interact with the append-only
// credit transaction log. Rows are never updated or deleted.
type TransactionRepository interface {
	// Create appends a new credit transaction
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.CreditTransaction) error

	// GetByPublicID retrieves a transaction by its stable external identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the identifier
	// - ErrDatabaseConnection: If database connection fails
	GetByPublicID(ctx context.Context, publicID string) (*entity.CreditTransaction, error)

	// ListByUser returns the user's transactions ordered by creation time
	// descending, windowed by page, along with the total row count.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64, page Page) ([]*entity.CreditTransaction, int64, error)

	// SumAmounts returns the sum of the user's transaction amounts.
	// Used by audit checks against the derived balance.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	SumAmounts(ctx context.Context, userID uint64) (int64, error)
}
