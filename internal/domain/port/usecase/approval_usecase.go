package usecase

import (
	"context"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// ApprovalIssuer issues approval records idempotently keyed by
// (userID, iidNumber). The returned bool reports whether this call
// created the approval; repeat calls return the existing record with
// created == false and no side effects.
type ApprovalIssuer interface {
	Issue(ctx context.Context, userID uint64, iidNumber, confirmationNumber string) (*entity.Approval, bool, error)
}
