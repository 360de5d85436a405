package dto

import (
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// TransferRequest represents the API request for a peer transfer
type TransferRequest struct {
	Amount          FlexibleAmount `json:"amount"`
	RecipientNumber string         `json:"recipientNumber"`
}

// TransferResponse represents the sender's view of a completed transfer
type TransferResponse struct {
	TransactionID string `json:"transactionId"`
	RecipientID   string `json:"recipientId"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

// TransactionResponse is one ledger entry in the transaction history
type TransactionResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	Credit       bool      `json:"credit"`
	BalanceAfter string    `json:"balanceAfter"`
	Description  string    `json:"description"`
	Reference    string    `json:"reference,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a ledger entry to its API shape. Amount is always positive;
// Credit carries the direction.
func NewTransactionResponse(e *entity.LedgerEntry) TransactionResponse {
	amount := e.Amount
	if amount < 0 {
		amount = -amount
	}
	return TransactionResponse{
		ID:           e.ID,
		Type:         string(e.Type),
		Amount:       entity.FormatAmount(amount),
		Credit:       e.IsCredit(),
		BalanceAfter: entity.FormatAmount(e.BalanceAfter),
		Description:  e.Description,
		Reference:    e.Reference,
		CreatedAt:    e.CreatedAt,
	}
}

// TransactionListResponse is the page shape of the transaction history
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   entity.PageInfo       `json:"pagination"`
}

// NewTransactionListResponse maps a page of ledger entries
func NewTransactionListResponse(page *entity.Page[*entity.LedgerEntry]) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, NewTransactionResponse(e))
	}
	return TransactionListResponse{Transactions: items, Pagination: page.Info}
}
