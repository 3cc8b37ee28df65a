package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/persistence"
)

func TestRecorder_Record(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should record credit movement atomically", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := entity.NewUser(userID, entity.RoleUser, 150, mockTimeProvider)
		assert.NoError(t, err)

		txCtx := context.Background()
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetUserRepository", txCtx).Return(mockUserRepo)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockUserRepo.On("ApplyDelta", txCtx, userID, int64(50)).Return(user, nil)
		mockTxRepo.On("Create", txCtx, mock.AnythingOfType("*entity.CreditTransaction")).Return(nil)
		mockUow.On("Commit", txCtx).Return(nil)
		mockLogger.On("Info", "Credit movement recorded", mock.Anything).Return()

		recorder := NewRecorder(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, resultUser, err := recorder.Record(ctx, userID, 50, entity.TypePurchase, "purchase:ref-1")

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, txn)
		assert.Equal(t, int64(50), txn.Amount)
		assert.Equal(t, entity.TypePurchase, txn.Type)
		assert.Equal(t, int64(150), txn.ResultBalance)
		assert.Equal(t, user, resultUser)

		mockUow.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
		mockTxRepo.AssertExpectations(t)
		mockUow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("should pass through a tripped balance guard and roll back", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		txCtx := context.Background()
		guardErr := errs.NewInsufficientCreditError(userID, 5, 3)
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetUserRepository", txCtx).Return(mockUserRepo)
		mockUserRepo.On("ApplyDelta", txCtx, userID, int64(-5)).Return(nil, guardErr)
		mockUow.On("Rollback", txCtx).Return(nil)

		recorder := NewRecorder(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, user, err := recorder.Record(ctx, userID, -5, entity.TypeUsage, "")

		// Assert
		assert.Nil(t, txn)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredit)

		mockUow.AssertExpectations(t)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject invalid movement before any storage work", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		recorder := NewRecorder(mockUow, mockTimeProvider, mockLogger)

		// Act: usage with a positive amount violates the sign rule
		txn, user, err := recorder.Record(ctx, 123, 5, entity.TypeUsage, "")

		// Assert
		assert.Nil(t, txn)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should roll back when the transaction append fails", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := entity.NewUser(userID, entity.RoleUser, 60, mockTimeProvider)
		assert.NoError(t, err)

		txCtx := context.Background()
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetUserRepository", txCtx).Return(mockUserRepo)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockUserRepo.On("ApplyDelta", txCtx, userID, int64(10)).Return(user, nil)
		mockTxRepo.On("Create", txCtx, mock.AnythingOfType("*entity.CreditTransaction")).Return(errs.ErrDatabaseConnection)
		mockUow.On("Rollback", txCtx).Return(nil)

		recorder := NewRecorder(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, resultUser, err := recorder.Record(ctx, userID, 10, entity.TypePurchase, "")

		// Assert
		assert.Nil(t, txn)
		assert.Nil(t, resultUser)
		var ledgerErr *errs.LedgerError
		assert.ErrorAs(t, err, &ledgerErr)
		assert.Equal(t, "transaction append failed", ledgerErr.Reason)

		mockUow.AssertExpectations(t)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should surface a failed commit", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := entity.NewUser(userID, entity.RoleUser, 60, mockTimeProvider)
		assert.NoError(t, err)

		txCtx := context.Background()
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("GetUserRepository", txCtx).Return(mockUserRepo)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockUserRepo.On("ApplyDelta", txCtx, userID, int64(10)).Return(user, nil)
		mockTxRepo.On("Create", txCtx, mock.AnythingOfType("*entity.CreditTransaction")).Return(nil)
		mockUow.On("Commit", txCtx).Return(errs.ErrTransient)
		mockUow.On("Rollback", txCtx).Return(nil)

		recorder := NewRecorder(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, resultUser, err := recorder.Record(ctx, userID, 10, entity.TypePurchase, "")

		// Assert
		assert.Nil(t, txn)
		assert.Nil(t, resultUser)
		assert.True(t, errs.IsTransientError(err))

		mockUow.AssertExpectations(t)
	})
}
