package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
)

// ApprovalStatus defines possible status values for an approval
type ApprovalStatus string

// Approval statuses
const (
	ApprovalSuccess ApprovalStatus = "success"
	ApprovalFailed  ApprovalStatus = "failed"
)

// Approval is the entitlement record produced by spending one credit
// unit. At most one approval exists per (UserID, IIDNumber) pair; a
// success approval is never deleted and never re-debits credit.
type Approval struct {
	ID                 uint64         // Storage identifier
	PublicID           string         // Stable external identifier (uuid)
	UserID             uint64         // Owner of the approval
	IIDNumber          string         // External identifier, the idempotency key with UserID
	ConfirmationNumber string         // Confirmation supplied by the caller
	Status             ApprovalStatus // success or failed
	CreatedAt          time.Time      // When the approval was issued
}

// NewApproval creates a success approval for the given identifier pair
func NewApproval(userID uint64, iidNumber, confirmationNumber string, timeProvider coreport.TimeProvider) (*Approval, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(iidNumber) == "" {
		return nil, errs.ErrInvalidIIDNumber
	}

	return &Approval{
		PublicID:           uuid.NewString(),
		UserID:             userID,
		IIDNumber:          strings.TrimSpace(iidNumber),
		ConfirmationNumber: strings.TrimSpace(confirmationNumber),
		Status:             ApprovalSuccess,
		CreatedAt:          timeProvider.Now(),
	}, nil
}
