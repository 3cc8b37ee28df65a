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

// ApprovalRepository implements the persistence.ApprovalRepository port
// using GORM. The unique index over (user_id, iid_number) turns a racing
// second insert into ErrDuplicateApproval, which issuance resolves by
// returning the winner.
type ApprovalRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewApprovalRepository creates a new ApprovalRepository instance
func NewApprovalRepository(db *gorm.DB, logger coreport.Logger) *ApprovalRepository {
	return &ApprovalRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts an approval entity to a database model
func (r *ApprovalRepository) entityToModel(approval *entity.Approval) model.Approval {
	return model.Approval{
		PublicID:           approval.PublicID,
		UserID:             approval.UserID,
		IIDNumber:          approval.IIDNumber,
		ConfirmationNumber: approval.ConfirmationNumber,
		Status:             string(approval.Status),
		CreatedAt:          approval.CreatedAt,
	}
}

// modelToEntity converts an approval model to an entity
func (r *ApprovalRepository) modelToEntity(m *model.Approval) *entity.Approval {
	return &entity.Approval{
		ID:                 m.ID,
		PublicID:           m.PublicID,
		UserID:             m.UserID,
		IIDNumber:          m.IIDNumber,
		ConfirmationNumber: m.ConfirmationNumber,
		Status:             entity.ApprovalStatus(m.Status),
		CreatedAt:          m.CreatedAt,
	}
}

// Create persists a new approval
func (r *ApprovalRepository) Create(ctx context.Context, approval *entity.Approval) error {
	approvalModel := r.entityToModel(approval)

	result := r.db.WithContext(ctx).Create(&approvalModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Approval insert lost uniqueness race", map[string]any{
				"user_id":    approval.UserID,
				"iid_number": approval.IIDNumber,
			})
			return errs.ErrDuplicateApproval
		}

		r.logger.Error("Failed to create approval", map[string]any{
			"user_id":    approval.UserID,
			"iid_number": approval.IIDNumber,
			"error":      result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	approval.ID = approvalModel.ID
	return nil
}

// GetByUserAndIID retrieves the approval for the idempotency key
func (r *ApprovalRepository) GetByUserAndIID(ctx context.Context, userID uint64, iidNumber string) (*entity.Approval, error) {
	var approvalModel model.Approval
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND iid_number = ?", userID, iidNumber).
		First(&approvalModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrApprovalNotFound
		}
		r.logger.Error("Failed to get approval", map[string]any{
			"user_id":    userID,
			"iid_number": iidNumber,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&approvalModel), nil
}

// ListByUser returns a page of the user's approvals, newest first
func (r *ApprovalRepository) ListByUser(ctx context.Context, userID uint64, page persistence.Page) ([]*entity.Approval, int64, error) {
	var total int64
	if result := r.db.WithContext(ctx).Model(&model.Approval{}).
		Where("user_id = ?", userID).
		Count(&total); result.Error != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	var rows []model.Approval
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&rows)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	approvals := make([]*entity.Approval, 0, len(rows))
	for i := range rows {
		approvals = append(approvals, r.modelToEntity(&rows[i]))
	}
	return approvals, total, nil
}
