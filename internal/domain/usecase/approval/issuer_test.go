package approval

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

func TestIssuer_Issue(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should issue approval, debit one credit and append usage entry", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockApprovalRepo := new(persistence.MockApprovalRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := entity.NewUser(userID, entity.RoleUser, 4, mockTimeProvider)
		assert.NoError(t, err)

		txCtx := context.Background()
		mockUow.On("GetApprovalRepository", mock.Anything).Return(mockApprovalRepo)
		mockApprovalRepo.On("GetByUserAndIID", ctx, userID, "IID-001").Return(nil, errs.ErrApprovalNotFound).Once()
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockApprovalRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Approval")).Return(nil)
		mockUow.On("GetUserRepository", txCtx).Return(mockUserRepo)
		mockUserRepo.On("ApplyDelta", txCtx, userID, int64(-1)).Return(user, nil)
		mockUow.On("GetTransactionRepository", txCtx).Return(mockTxRepo)
		mockTxRepo.On("Create", txCtx, mock.MatchedBy(func(txn *entity.CreditTransaction) bool {
			return txn.Amount == -1 && txn.Type == entity.TypeUsage && txn.Note == "approval:IID-001"
		})).Return(nil)
		mockUow.On("Commit", txCtx).Return(nil)
		mockLogger.On("Info", "Approval issued", mock.Anything).Return()

		issuer := NewIssuer(mockUow, mockTimeProvider, mockLogger)

		// Act
		approval, created, err := issuer.Issue(ctx, userID, "IID-001", "CONF-9")

		// Assert
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NotNil(t, approval)
		assert.Equal(t, "IID-001", approval.IIDNumber)
		assert.Equal(t, entity.ApprovalSuccess, approval.Status)

		mockUow.AssertExpectations(t)
		mockApprovalRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
		mockTxRepo.AssertExpectations(t)
	})

	t.Run("should return existing approval without touching the ledger", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockApprovalRepo := new(persistence.MockApprovalRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		existing, err := entity.NewApproval(userID, "IID-001", "CONF-1", mockTimeProvider)
		assert.NoError(t, err)

		mockUow.On("GetApprovalRepository", ctx).Return(mockApprovalRepo)
		mockApprovalRepo.On("GetByUserAndIID", ctx, userID, "IID-001").Return(existing, nil)
		mockLogger.On("Debug", "Approval already issued, returning existing record", mock.Anything).Return()

		issuer := NewIssuer(mockUow, mockTimeProvider, mockLogger)

		// Act: a different confirmation number must not matter
		approval, created, err := issuer.Issue(ctx, userID, "IID-001", "CONF-OTHER")

		// Assert
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, approval)

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should reject issuance when no credit is available", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockApprovalRepo := new(persistence.MockApprovalRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		txCtx := context.Background()
		mockUow.On("GetApprovalRepository", mock.Anything).Return(mockApprovalRepo)
		mockApprovalRepo.On("GetByUserAndIID", ctx, userID, "IID-001").Return(nil, errs.ErrApprovalNotFound).Once()
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockApprovalRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Approval")).Return(nil)
		mockUow.On("GetUserRepository", txCtx).Return(mockUserRepo)
		mockUserRepo.On("ApplyDelta", txCtx, userID, int64(-1)).
			Return(nil, errs.NewInsufficientCreditError(userID, 1, 0))
		mockUow.On("Rollback", txCtx).Return(nil)
		mockLogger.On("Warn", "Approval rejected, no credit to spend", mock.Anything).Return()

		issuer := NewIssuer(mockUow, mockTimeProvider, mockLogger)

		// Act
		approval, created, err := issuer.Issue(ctx, userID, "IID-001", "CONF-9")

		// Assert
		assert.Nil(t, approval)
		assert.False(t, created)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredit)

		mockUow.AssertExpectations(t)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should return the winner after losing the uniqueness race", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUow := new(persistence.MockUnitOfWork)
		mockApprovalRepo := new(persistence.MockApprovalRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		winner, err := entity.NewApproval(userID, "IID-001", "CONF-WINNER", mockTimeProvider)
		assert.NoError(t, err)

		txCtx := context.Background()
		mockUow.On("GetApprovalRepository", mock.Anything).Return(mockApprovalRepo)
		// Not there at check time, inserted by a concurrent writer before ours.
		mockApprovalRepo.On("GetByUserAndIID", ctx, userID, "IID-001").Return(nil, errs.ErrApprovalNotFound).Once()
		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockApprovalRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Approval")).Return(errs.ErrDuplicateApproval)
		mockUow.On("Rollback", txCtx).Return(nil)
		mockApprovalRepo.On("GetByUserAndIID", ctx, userID, "IID-001").Return(winner, nil).Once()
		mockLogger.On("Info", "Lost approval uniqueness race, returning winner", mock.Anything).Return()

		issuer := NewIssuer(mockUow, mockTimeProvider, mockLogger)

		// Act
		approval, created, err := issuer.Issue(ctx, userID, "IID-001", "CONF-LOSER")

		// Assert
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, winner, approval)

		mockUow.AssertExpectations(t)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
		mockUow.AssertNotCalled(t, "GetUserRepository", mock.Anything)
	})

	t.Run("should reject blank identifier before any storage work", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		issuer := NewIssuer(mockUow, mockTimeProvider, mockLogger)

		// Act
		approval, created, err := issuer.Issue(ctx, 123, "   ", "CONF-9")

		// Assert
		assert.Nil(t, approval)
		assert.False(t, created)
		assert.ErrorIs(t, err, errs.ErrInvalidIIDNumber)

		mockUow.AssertNotCalled(t, "GetApprovalRepository", mock.Anything)
	})
}
