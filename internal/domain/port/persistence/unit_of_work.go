package persistence

import (
	"context"
)

// UnitOfWork coordinates one database transaction across repositories
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetRequestRepository returns a financial request repository bound to the current transaction
	GetRequestRepository(ctx context.Context) FinancialRequestRepository

	// GetLedgerRepository returns a ledger repository bound to the current transaction
	GetLedgerRepository(ctx context.Context) LedgerRepository

	// GetTournamentRepository returns a tournament repository bound to the current transaction
	GetTournamentRepository(ctx context.Context) TournamentRepository

	// GetReferralRepository returns a referral repository bound to the current transaction
	GetReferralRepository(ctx context.Context) ReferralRepository
}
