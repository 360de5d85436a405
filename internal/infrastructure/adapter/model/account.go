package model

import (
	"time"
)

// Account represents the database model for wallet accounts
type Account struct {
	UserID       string    `gorm:"primaryKey;size:64"`
	Name         string    `gorm:"size:100"`
	Phone        string    `gorm:"size:32;index"`
	Role         string    `gorm:"size:16;not null;default:user"`
	Balance      int64     `gorm:"not null;default:0;check:chk_accounts_balance,balance >= 0"` // minor units
	ReferralCode *string   `gorm:"size:16;uniqueIndex"`
	ReferredBy   *string   `gorm:"size:64"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
