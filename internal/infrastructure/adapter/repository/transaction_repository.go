package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the persistence.TransactionRepository
// port using GORM. The log is append-only: the repository exposes no
// update or delete operation.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.CreditTransaction) model.CreditTransaction {
	return model.CreditTransaction{
		PublicID:      txn.PublicID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Note:          txn.Note,
		ResultBalance: txn.ResultBalance,
		CreatedAt:     txn.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.CreditTransaction) *entity.CreditTransaction {
	return &entity.CreditTransaction{
		ID:            m.ID,
		PublicID:      m.PublicID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Type:          entity.TransactionType(m.Type),
		Note:          m.Note,
		ResultBalance: m.ResultBalance,
		CreatedAt:     m.CreatedAt,
	}
}

// Create appends a new transaction row
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.CreditTransaction) error {
	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		r.logger.Error("Failed to append credit transaction", map[string]any{
			"public_id": txn.PublicID,
			"user_id":   txn.UserID,
			"error":     result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) &&
			!r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = txnModel.ID
	return nil
}

// GetByPublicID retrieves a transaction by its stable external identifier
func (r *TransactionRepository) GetByPublicID(ctx context.Context, publicID string) (*entity.CreditTransaction, error) {
	var txnModel model.CreditTransaction
	result := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&txnModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"public_id": publicID,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&txnModel), nil
}

// ListByUser returns a page of the user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.CreditTransaction, int64, error) {
	var total int64
	if result := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Where("user_id = ?", userID).
		Count(&total); result.Error != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	var rows []model.CreditTransaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&rows)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.CreditTransaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, total, nil
}

// SumAmounts returns the sum of the user's transaction amounts
func (r *TransactionRepository) SumAmounts(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	result := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return sum, nil
}
