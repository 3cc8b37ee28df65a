package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/model"
)

// UserRepository implements the persistence.UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(userModel.ID, userModel.Role, userModel.Balance, r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to build user entity from row", map[string]any{
			"user_id": userModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to build user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	user.TransactionCount = userModel.TransactionCount

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:               user.ID,
		Role:             user.Role,
		Balance:          user.Balance(),
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
		TransactionCount: user.TransactionCount,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"balance": user.Balance(),
	})
	return nil
}

// ApplyDelta applies a signed credit movement to the user's balance as a
// single conditional UPDATE: the non-negativity guard lives in the WHERE
// clause, so a stale balance read can never let a debit race past zero.
func (r *UserRepository) ApplyDelta(ctx context.Context, userID uint64, amount int64) (*entity.User, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND balance + ? >= 0", userID, amount).
		Updates(map[string]interface{}{
			"balance":           gorm.Expr("balance + ?", amount),
			"transaction_count": gorm.Expr("transaction_count + 1"),
			"updated_at":        now,
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("applying balance delta", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		// The guard rejected the write; read the row to tell a missing
		// user apart from an insufficient balance.
		var userModel model.User
		readResult := r.db.WithContext(ctx).First(&userModel, userID)
		if readResult.Error != nil {
			return nil, r.handleDatabaseError("applying balance delta", readResult.Error, userID)
		}

		r.logger.Warn("Debit rejected by balance guard", map[string]any{
			"user_id":         userID,
			"current_balance": userModel.Balance,
			"requested":       amount,
		})
		return nil, errs.NewInsufficientCreditError(userID, -amount, userModel.Balance)
	}

	var userModel model.User
	if readResult := r.db.WithContext(ctx).First(&userModel, userID); readResult.Error != nil {
		return nil, r.handleDatabaseError("reading user after delta", readResult.Error, userID)
	}

	user, err := r.modelToEntity(&userModel)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Balance delta applied", map[string]any{
		"user_id":     userID,
		"amount":      amount,
		"new_balance": user.Balance(),
	})

	return user, nil
}
