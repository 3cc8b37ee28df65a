package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create user with valid inputs", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := NewUser(123, RoleUser, 100, mockTimeProvider)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, uint64(123), user.ID)
		assert.Equal(t, int64(100), user.Balance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
		assert.Equal(t, uint64(0), user.TransactionCount)
	})

	t.Run("should default to user role when empty", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := NewUser(123, "", 0, mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, RoleUser, user.Role)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		user, err := NewUser(0, RoleUser, 100, mockTimeProvider)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject negative initial balance", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		user, err := NewUser(123, RoleUser, -1, mockTimeProvider)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

