package model

import (
	"time"
)

// Coupon represents the database model for persisted coupons
type Coupon struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	Code         string     `gorm:"uniqueIndex;not null;size:64"`
	CreditAmount int64      `gorm:"not null"`
	UsageLimit   uint64     `gorm:"not null"`
	UsedCount    uint64     `gorm:"not null;default:0"`
	ExpiresAt    *time.Time
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Coupon
func (Coupon) TableName() string {
	return "coupons"
}
