package persistence

import (
	"context"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// ApprovalRepository defines methods to interact with approval records.
// The storage layer enforces uniqueness over (user_id, iid_number); that
// constraint, not any application-level existence check, is the
// authoritative idempotency guard.
type ApprovalRepository interface {
	// Create persists a new approval
	//
	// Possible errors:
	// - ErrDuplicateApproval: If an approval already exists for (userID, iidNumber)
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, approval *entity.Approval) error

	// GetByUserAndIID retrieves the approval for the idempotency key
	//
	// Possible errors:
	// - ErrApprovalNotFound: If no approval exists for the pair
	// - ErrDatabaseConnection: If database connection fails
	GetByUserAndIID(ctx context.Context, userID uint64, iidNumber string) (*entity.Approval, error)

	// ListByUser returns the user's approvals ordered by creation time
	// descending, windowed by page, along with the total row count.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64, page Page) ([]*entity.Approval, int64, error)
}
