package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// Account is a player's wallet; the balance is kept in minor units and never goes negative
type Account struct {
	UserID       string
	Name         string
	Phone        string
	Role         Role
	balance      int64
	ReferralCode string
	ReferredBy   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount provisions an empty wallet for a verified principal
func NewAccount(p Principal, timeProvider coreport.TimeProvider) (*Account, error) {
	if p.UserID == "" {
		return nil, errs.ErrUnauthorized
	}
	now := timeProvider.Now()
	return &Account{
		UserID:    p.UserID,
		Name:      p.Name,
		Phone:     p.Phone,
		Role:      p.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the balance in minor units
func (a *Account) Balance() int64 {
	return a.balance
}

// FormattedBalance returns the balance with exactly two decimals
func (a *Account) FormattedBalance() string {
	return FormatAmount(a.balance)
}

// RestoreBalance sets the balance when loading from storage
func (a *Account) RestoreBalance(minor int64) {
	a.balance = minor
}

// SyncProfile refreshes token-derived fields, reporting whether anything changed
func (a *Account) SyncProfile(p Principal) bool {
	changed := false
	if p.Name != "" && p.Name != a.Name {
		a.Name = p.Name
		changed = true
	}
	if p.Phone != "" && p.Phone != a.Phone {
		a.Phone = p.Phone
		changed = true
	}
	if p.Role != "" && p.Role != a.Role {
		a.Role = p.Role
		changed = true
	}
	return changed
}

// Credit adds a positive amount
func (a *Account) Credit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrNegativeAmount
	}
	next, err := AddAmounts(a.balance, amount)
	if err != nil {
		return err
	}
	a.balance = next
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit removes a positive amount if the balance covers it
func (a *Account) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrNegativeAmount
	}
	if a.balance < amount {
		return errs.NewInsufficientBalanceError(a.UserID, FormatAmount(amount), FormatAmount(a.balance))
	}
	a.balance -= amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Apply credits or debits according to the sign of the effect
func (a *Account) Apply(effect BalanceEffect, timeProvider coreport.TimeProvider) error {
	switch {
	case effect.Amount > 0:
		return a.Credit(effect.Amount, timeProvider)
	case effect.Amount < 0:
		return a.Debit(-effect.Amount, timeProvider)
	}
	return nil
}
