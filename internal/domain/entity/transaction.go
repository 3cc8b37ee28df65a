package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
)

// TransactionType represents the cause of a credit movement
type TransactionType string

// Transaction types. Usage is the only debit-causing type; admin
// adjustments carry their own sign.
const (
	TypePurchase TransactionType = "purchase"
	TypeCoupon   TransactionType = "coupon"
	TypeAdminAdd TransactionType = "admin_add"
	TypeUsage    TransactionType = "usage"
	TypeRefund   TransactionType = "refund"
)

// CreditTransaction represents an immutable signed credit movement.
// Rows are created once and are permanent audit artifacts; the sum of a
// user's amounts always equals that user's current balance.
type CreditTransaction struct {
	ID            uint64          // Storage identifier
	PublicID      string          // Stable external identifier (uuid)
	UserID        uint64          // ID of the user this movement belongs to
	Amount        int64           // Signed amount in whole credit units
	Type          TransactionType // Cause of the movement
	Note          string          // Free-form audit note
	ResultBalance int64           // Balance after this movement was applied
	CreatedAt     time.Time       // When the movement was recorded
}

// NewCreditTransaction creates a new credit transaction with basic validation
func NewCreditTransaction(
	userID uint64,
	amount int64,
	txType TransactionType,
	note string,
	timeProvider coreport.TimeProvider,
) (*CreditTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	if err := ValidateAmountSign(txType, amount); err != nil {
		return nil, err
	}

	return &CreditTransaction{
		PublicID:  uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Type:      txType,
		Note:      note,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsValidTransactionType validates if the cause is a recognized type
func IsValidTransactionType(txType string) bool {
	switch TransactionType(txType) {
	case TypePurchase, TypeCoupon, TypeAdminAdd, TypeUsage, TypeRefund:
		return true
	default:
		return false
	}
}

// ValidateAmountSign checks that the amount's sign matches the cause:
// usage must debit, purchase/coupon/refund must credit, admin_add may
// carry either sign.
func ValidateAmountSign(txType TransactionType, amount int64) error {
	switch txType {
	case TypeUsage:
		if amount >= 0 {
			return fmt.Errorf("%w: %s requires a negative amount", errs.ErrInvalidAmount, txType)
		}
	case TypePurchase, TypeCoupon, TypeRefund:
		if amount <= 0 {
			return fmt.Errorf("%w: %s requires a positive amount", errs.ErrInvalidAmount, txType)
		}
	case TypeAdminAdd:
		if amount == 0 {
			return errs.ErrInvalidAmount
		}
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	return nil
}
