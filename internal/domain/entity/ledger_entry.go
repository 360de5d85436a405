package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// LedgerType classifies a balance change
type LedgerType string

// Ledger types
const (
	LedgerTopUp       LedgerType = "top-up"
	LedgerWithdrawal  LedgerType = "withdrawal"
	LedgerRefund      LedgerType = "refund"
	LedgerPrize       LedgerType = "prize"
	LedgerTransferIn  LedgerType = "transfer-in"
	LedgerTransferOut LedgerType = "transfer-out"
	LedgerReferral    LedgerType = "referral"
	LedgerEntryFee    LedgerType = "entry-fee"
)

// History groups exposed by the transaction history filter
const (
	HistoryGroupAll        = "all"
	HistoryGroupTopUp      = "top-up"
	HistoryGroupReferral   = "referral"
	HistoryGroupWithdrawal = "withdrawal"
	HistoryGroupOther      = "other"
)

// LedgerTypesForGroup resolves a history group to the ledger types it covers.
// A nil slice means no type filter.
func LedgerTypesForGroup(group string) ([]LedgerType, error) {
	switch strings.ToLower(strings.TrimSpace(group)) {
	case "", HistoryGroupAll:
		return nil, nil
	case HistoryGroupTopUp:
		return []LedgerType{LedgerTopUp}, nil
	case HistoryGroupReferral:
		return []LedgerType{LedgerReferral}, nil
	case HistoryGroupWithdrawal:
		return []LedgerType{LedgerWithdrawal}, nil
	case HistoryGroupOther:
		return []LedgerType{LedgerRefund, LedgerPrize, LedgerTransferIn, LedgerTransferOut, LedgerEntryFee}, nil
	}
	return nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrValidation, group)
}

// LedgerEntry is an immutable record of one balance change
type LedgerEntry struct {
	ID           string
	UserID       string
	Type         LedgerType
	Amount       int64 // signed minor units
	BalanceAfter int64
	Description  string
	Reference    string
	CreatedAt    time.Time
}

// NewLedgerEntry records an effect already applied to the account
func NewLedgerEntry(
	id string,
	account *Account,
	effect BalanceEffect,
	description string,
	reference string,
	timeProvider coreport.TimeProvider,
) *LedgerEntry {
	return &LedgerEntry{
		ID:           id,
		UserID:       account.UserID,
		Type:         effect.Type,
		Amount:       effect.Amount,
		BalanceAfter: account.Balance(),
		Description:  description,
		Reference:    reference,
		CreatedAt:    timeProvider.Now(),
	}
}

// IsCredit reports whether the entry increased the balance
func (e *LedgerEntry) IsCredit() bool {
	return e.Amount > 0
}

// LedgerFilter narrows a ledger history query
type LedgerFilter struct {
	UserID string
	Types  []LedgerType
	Search string
}
