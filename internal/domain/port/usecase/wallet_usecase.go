package usecase

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// TransferCommand moves funds to another player identified by phone number
type TransferCommand struct {
	Amount          string
	RecipientNumber string
}

// TransferResult is the sender's side of a completed transfer
type TransferResult struct {
	Sender      *entity.Account
	RecipientID string
	Entry       *entity.LedgerEntry
}

// HistoryQuery is a raw ledger history request
type HistoryQuery struct {
	Page   int
	Limit  int
	Type   string
	Search string
}

// WalletUseCase covers balances, transfers and ledger history
type WalletUseCase interface {
	// EnsureAccount provisions the caller's wallet on first use and syncs token profile fields
	EnsureAccount(ctx context.Context, p entity.Principal) (*entity.Account, error)

	// GetWallet returns the caller's account with its balance
	GetWallet(ctx context.Context, p entity.Principal) (*entity.Account, error)

	// Transfer moves funds between two wallets atomically
	Transfer(ctx context.Context, p entity.Principal, cmd TransferCommand) (*TransferResult, error)

	// History lists the caller's ledger entries
	History(ctx context.Context, p entity.Principal, query HistoryQuery) (*entity.Page[*entity.LedgerEntry], error)
}
