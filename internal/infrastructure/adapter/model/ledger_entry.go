package model

import (
	"time"
)

// LedgerEntry represents an immutable balance movement
type LedgerEntry struct {
	ID           string    `gorm:"primaryKey;size:40"`
	UserID       string    `gorm:"not null;size:64;index:idx_ledger_user_created,priority:1"`
	Type         string    `gorm:"not null;size:16"`
	Amount       int64     `gorm:"not null"` // signed minor units
	BalanceAfter int64     `gorm:"not null"`
	Description  string    `gorm:"size:255"`
	Reference    string    `gorm:"size:64;index"`
	CreatedAt    time.Time `gorm:"not null;index:idx_ledger_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
