package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern over gorm transactions.
// Repositories obtained through a transactional context share one storage
// transaction, so a public operation's writes commit together or not at all.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a new database transaction and stores it in the returned context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction in the given context
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction in the given context
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Rollback().Error; err != nil {
		u.logger.Error("Failed to roll back transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to roll back transaction: %w", err)
	}
	return nil
}

// handle returns the transaction stored in the context, or the base
// handle when the context carries none.
func (u *UnitOfWork) handle(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db
}

// GetUserRepository returns a user repository bound to the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.handle(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction repository bound to the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.handle(ctx), u.logger)
}

// GetApprovalRepository returns an approval repository bound to the current transaction
func (u *UnitOfWork) GetApprovalRepository(ctx context.Context) persistence.ApprovalRepository {
	return repository.NewApprovalRepository(u.handle(ctx), u.logger)
}

// GetCouponRepository returns the persisted coupon registry bound to the current transaction
func (u *UnitOfWork) GetCouponRepository(ctx context.Context) persistence.CouponRepository {
	return repository.NewCouponRepository(u.handle(ctx), u.timeProvider, u.logger)
}
