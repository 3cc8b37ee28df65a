package model

import (
	"time"
)

// Approval represents the database model for approvals. The composite
// unique index over (user_id, iid_number) is the authoritative
// idempotency guard for issuance.
type Approval struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	PublicID           string    `gorm:"uniqueIndex;not null;size:36"`
	UserID             uint64    `gorm:"not null;uniqueIndex:idx_approvals_user_iid,priority:1"`
	IIDNumber          string    `gorm:"column:iid_number;not null;size:255;uniqueIndex:idx_approvals_user_iid,priority:2"`
	ConfirmationNumber string    `gorm:"not null;size:255"`
	Status             string    `gorm:"not null;size:20"`
	CreatedAt          time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Approval
func (Approval) TableName() string {
	return "approvals"
}
