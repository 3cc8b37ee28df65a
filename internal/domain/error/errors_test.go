package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"forbidden", ErrForbidden, CodeForbidden},
		{"insufficient credit", ErrInsufficientCredit, CodeInsufficientCredit},
		{"insufficient balance", ErrInsufficientBalance, CodeInsufficientCredit},
		{"invalid coupon", ErrInvalidCoupon, CodeInvalidCoupon},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"invalid user id", ErrInvalidUserID, CodeInvalidUserID},
		{"validation", ErrValidation, CodeValidation},
		{"invalid iid number", ErrInvalidIIDNumber, CodeValidation},
		{"user not found", ErrUserNotFound, CodeUserNotFound},
		{"approval not found", ErrApprovalNotFound, CodeNotFound},
		{"duplicate approval", ErrDuplicateApproval, CodeConflict},
		{"conflict", ErrConflict, CodeConflict},
		{"transient", ErrTransient, CodeTransient},
		{"unknown", errors.New("boom"), CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}

	t.Run("wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrInsufficientCredit)
		assert.Equal(t, CodeInsufficientCredit, ErrorCode(wrapped))
	})
}

func TestInsufficientCreditError(t *testing.T) {
	err := NewInsufficientCreditError(123, 1, 0)

	assert.ErrorIs(t, err, ErrInsufficientCredit)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, IsInsufficientCreditError(err))
	assert.Contains(t, err.Error(), "user 123")
	assert.Equal(t, CodeInsufficientCredit, ErrorCode(err))

	var detailed *InsufficientCreditError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, uint64(123), detailed.UserID)
	assert.Equal(t, int64(1), detailed.Requested)
	assert.Equal(t, int64(0), detailed.CurrBalance)
	assert.NotEmpty(t, detailed.LogFields())
}

func TestLedgerError(t *testing.T) {
	cause := ErrTransient
	err := NewLedgerError(123, -5, "usage", "commit failed", cause)

	assert.ErrorIs(t, err, ErrTransient)
	assert.True(t, IsTransientError(err))
	assert.Contains(t, err.Error(), "commit failed")

	var detailed *LedgerError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, cause, detailed.Unwrap())
}

func TestInvalidCouponError(t *testing.T) {
	err := NewInvalidCouponError("EXPIRED1", "expired")

	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.True(t, IsInvalidCouponError(err))
	assert.Contains(t, err.Error(), "EXPIRED1")
	assert.Contains(t, err.Error(), "expired")
	assert.Equal(t, CodeInvalidCoupon, ErrorCode(err))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrApprovalNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrConflict))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrValidation))
	assert.True(t, IsValidationError(ErrInvalidAmount))
	assert.True(t, IsValidationError(ErrInvalidUserID))
	assert.True(t, IsValidationError(ErrInvalidTransactionType))
	assert.True(t, IsValidationError(ErrInvalidIIDNumber))
	assert.False(t, IsValidationError(ErrUserNotFound))
}
