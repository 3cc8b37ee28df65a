package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/core"
)

func TestNewApproval(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create success approval", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		approval, err := NewApproval(123, "IID-001", "CONF-9", mockTimeProvider)

		assert.NoError(t, err)
		assert.NotNil(t, approval)
		assert.NotEmpty(t, approval.PublicID)
		assert.Equal(t, uint64(123), approval.UserID)
		assert.Equal(t, "IID-001", approval.IIDNumber)
		assert.Equal(t, "CONF-9", approval.ConfirmationNumber)
		assert.Equal(t, ApprovalSuccess, approval.Status)
		assert.Equal(t, fixedTime, approval.CreatedAt)
	})

	t.Run("should trim identifier whitespace", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		approval, err := NewApproval(123, "  IID-001  ", " CONF-9 ", mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, "IID-001", approval.IIDNumber)
		assert.Equal(t, "CONF-9", approval.ConfirmationNumber)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		approval, err := NewApproval(0, "IID-001", "CONF-9", mockTimeProvider)

		assert.Nil(t, approval)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject blank identifier", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		approval, err := NewApproval(123, "   ", "CONF-9", mockTimeProvider)

		assert.Nil(t, approval)
		assert.ErrorIs(t, err, errs.ErrInvalidIIDNumber)
	})
}
