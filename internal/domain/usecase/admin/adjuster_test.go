package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/usecase"
)

func TestAdjuster_Adjust(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should record adjustment for admin actor", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockRecorder := new(usecase.MockLedgerRecorder)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := entity.NewUser(userID, entity.RoleUser, 5, mockTimeProvider)
		assert.NoError(t, err)
		txn := &entity.CreditTransaction{UserID: userID, Amount: 5, Type: entity.TypeAdminAdd, ResultBalance: 5}

		mockRecorder.On("Record", ctx, userID, int64(5), entity.TypeAdminAdd, "signup grant").
			Return(txn, user, nil)
		mockLogger.On("Info", "Admin adjustment recorded", mock.Anything).Return()

		adjuster := NewAdjuster(mockRecorder, mockLogger)

		// Act
		resultTxn, resultUser, err := adjuster.Adjust(ctx, entity.RoleAdmin, userID, 5, "signup grant")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, txn, resultTxn)
		assert.Equal(t, user, resultUser)

		mockRecorder.AssertExpectations(t)
	})

	t.Run("should allow negative adjustment", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockRecorder := new(usecase.MockLedgerRecorder)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := entity.NewUser(userID, entity.RoleUser, 2, mockTimeProvider)
		assert.NoError(t, err)
		txn := &entity.CreditTransaction{UserID: userID, Amount: -3, Type: entity.TypeAdminAdd, ResultBalance: 2}

		mockRecorder.On("Record", ctx, userID, int64(-3), entity.TypeAdminAdd, "correction").
			Return(txn, user, nil)
		mockLogger.On("Info", "Admin adjustment recorded", mock.Anything).Return()

		adjuster := NewAdjuster(mockRecorder, mockLogger)

		// Act
		resultTxn, _, err := adjuster.Adjust(ctx, entity.RoleAdmin, userID, -3, "correction")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(-3), resultTxn.Amount)
	})

	t.Run("should reject non-admin actor", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRecorder := new(usecase.MockLedgerRecorder)
		mockLogger := new(core.MockLogger)
		mockLogger.On("Warn", "Adjustment rejected for non-admin actor", mock.Anything).Return()

		adjuster := NewAdjuster(mockRecorder, mockLogger)

		// Act
		txn, user, err := adjuster.Adjust(ctx, entity.RoleUser, 123, 5, "nope")

		// Assert
		assert.Nil(t, txn)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrForbidden)

		mockRecorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should pass through recorder failures", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockRecorder := new(usecase.MockLedgerRecorder)
		mockLogger := new(core.MockLogger)

		guardErr := errs.NewInsufficientCreditError(userID, 10, 2)
		mockRecorder.On("Record", ctx, userID, int64(-10), entity.TypeAdminAdd, "claw back").
			Return(nil, nil, guardErr)

		adjuster := NewAdjuster(mockRecorder, mockLogger)

		// Act
		txn, user, err := adjuster.Adjust(ctx, entity.RoleAdmin, userID, -10, "claw back")

		// Assert
		assert.Nil(t, txn)
		assert.Nil(t, user)
		assert.True(t, errs.IsInsufficientCreditError(err))
	})
}
