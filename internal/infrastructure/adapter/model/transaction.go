package model

import (
	"time"
)

// CreditTransaction represents the database model for the append-only
// credit transaction log. Rows are inserted once and never touched again.
type CreditTransaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	PublicID      string    `gorm:"uniqueIndex;not null;size:36"`
	UserID        uint64    `gorm:"not null;index:idx_transactions_user_created,priority:1"`
	Amount        int64     `gorm:"not null"`
	Type          string    `gorm:"not null;size:20"`
	Note          string    `gorm:"type:text"`
	ResultBalance int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for CreditTransaction
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
