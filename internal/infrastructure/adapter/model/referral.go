package model

import (
	"time"
)

// Referral records that one player invited another
type Referral struct {
	ID          string    `gorm:"primaryKey;size:40"`
	ReferrerID  string    `gorm:"not null;size:64;index"`
	RefereeID   string    `gorm:"not null;size:64;uniqueIndex"`
	RefereeName string    `gorm:"size:100"`
	Bonus       int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}
