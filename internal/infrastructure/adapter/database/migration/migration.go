package migration

import (
	"gorm.io/gorm"

	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/model"
)

// MigrationManager manages database schema migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll creates or updates all tables and their indexes. GORM's
// AutoMigrate carries the unique indexes declared on the models,
// including the (user_id, iid_number) idempotency guard on approvals.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.CreditTransaction{},
		&model.Approval{},
		&model.Coupon{},
	); err != nil {
		m.logger.Error("Failed to migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations complete", nil)
	return nil
}
