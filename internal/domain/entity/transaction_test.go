package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/core"
)

func TestNewCreditTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create a purchase movement", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		txn, err := NewCreditTransaction(123, 50, TypePurchase, "purchase:ref-1", mockTimeProvider)

		assert.NoError(t, err)
		assert.NotNil(t, txn)
		assert.NotEmpty(t, txn.PublicID)
		assert.Equal(t, uint64(123), txn.UserID)
		assert.Equal(t, int64(50), txn.Amount)
		assert.Equal(t, TypePurchase, txn.Type)
		assert.Equal(t, "purchase:ref-1", txn.Note)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("should create a usage debit", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		txn, err := NewCreditTransaction(123, -1, TypeUsage, "approval:ABC", mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, int64(-1), txn.Amount)
	})

	t.Run("should assign distinct public IDs", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		first, err := NewCreditTransaction(123, 10, TypePurchase, "", mockTimeProvider)
		assert.NoError(t, err)
		second, err := NewCreditTransaction(123, 10, TypePurchase, "", mockTimeProvider)
		assert.NoError(t, err)

		assert.NotEqual(t, first.PublicID, second.PublicID)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		txn, err := NewCreditTransaction(0, 50, TypePurchase, "", mockTimeProvider)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		txn, err := NewCreditTransaction(123, 0, TypePurchase, "", mockTimeProvider)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		txn, err := NewCreditTransaction(123, 50, TransactionType("gift"), "", mockTimeProvider)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})
}

func TestValidateAmountSign(t *testing.T) {
	tests := []struct {
		name    string
		txType  TransactionType
		amount  int64
		wantErr bool
	}{
		{"usage must be negative", TypeUsage, -1, false},
		{"usage rejects positive", TypeUsage, 1, true},
		{"purchase must be positive", TypePurchase, 10, false},
		{"purchase rejects negative", TypePurchase, -10, true},
		{"coupon must be positive", TypeCoupon, 5, false},
		{"coupon rejects negative", TypeCoupon, -5, true},
		{"refund must be positive", TypeRefund, 3, false},
		{"refund rejects negative", TypeRefund, -3, true},
		{"admin_add allows positive", TypeAdminAdd, 5, false},
		{"admin_add allows negative", TypeAdminAdd, -5, false},
		{"admin_add rejects zero", TypeAdminAdd, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmountSign(tt.txType, tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("purchase"))
	assert.True(t, IsValidTransactionType("coupon"))
	assert.True(t, IsValidTransactionType("admin_add"))
	assert.True(t, IsValidTransactionType("usage"))
	assert.True(t, IsValidTransactionType("refund"))
	assert.False(t, IsValidTransactionType("gift"))
	assert.False(t, IsValidTransactionType(""))
}
