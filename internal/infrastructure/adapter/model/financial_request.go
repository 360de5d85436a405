package model

import (
	"time"
)

// FinancialRequest represents the database model for top-ups, withdrawals and prize claims
type FinancialRequest struct {
	ID             string    `gorm:"primaryKey;size:40"`
	RequesterID    string    `gorm:"not null;size:64;index:idx_requests_requester,priority:1"`
	RequesterName  string    `gorm:"size:100"`
	Kind           string    `gorm:"not null;size:16;index:idx_requests_kind_status,priority:1"`
	Amount         int64     `gorm:"not null;check:chk_requests_amount,amount > 0"`
	Status         string    `gorm:"not null;size:16;index:idx_requests_kind_status,priority:2"`
	PaymentMethod  string    `gorm:"size:16"`
	AccountNumber  string    `gorm:"size:64"`
	TransactionRef string    `gorm:"size:64"`
	ProofImage     string    `gorm:"size:255;index"`
	Notes          string    `gorm:"type:text"`
	ClaimNotes     string    `gorm:"type:text"`
	TournamentID   string    `gorm:"size:40;index"`
	TournamentCode string    `gorm:"size:64"`
	PrizeType      string    `gorm:"size:16"`
	PlayerName     string    `gorm:"size:100"`
	PlayerID       string    `gorm:"size:64"`
	Kills          *int
	Position       *int
	ProcessedBy    string `gorm:"size:64"`
	ProcessedAt    *time.Time
	Version        int64     `gorm:"not null;default:1"`
	CreatedAt      time.Time `gorm:"not null;index:idx_requests_requester,priority:2,sort:desc"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for FinancialRequest
func (FinancialRequest) TableName() string {
	return "financial_requests"
}
