package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

// TopUpForm is the multipart body of POST /api/topup; slipImage travels as a file part
type TopUpForm struct {
	Amount        string `form:"amount"`
	PaymentMethod string `form:"paymentMethod"`
	AccountNumber string `form:"accountNumber"`
	TransactionID string `form:"transactionId"`
}

// Submission converts the form into a domain submission
func (f TopUpForm) Submission() entity.Submission {
	return entity.Submission{
		Kind:           entity.KindTopUp,
		Amount:         f.Amount,
		PaymentMethod:  f.PaymentMethod,
		AccountNumber:  f.AccountNumber,
		TransactionRef: f.TransactionID,
	}
}

// PrizeClaimForm is the multipart body of POST /api/prizes; proofImage travels as a file part
type PrizeClaimForm struct {
	TournamentID   string `form:"tournamentId"`
	TournamentCode string `form:"tournamentCode"`
	PrizeType      string `form:"prizeType"`
	Amount         string `form:"amount"`
	PlayerName     string `form:"playerName"`
	PlayerID       string `form:"playerID"`
	Kills          string `form:"kills"`
	Position       string `form:"position"`
	Notes          string `form:"notes"`
}

// Submission converts the form into a domain submission
func (f PrizeClaimForm) Submission() entity.Submission {
	return entity.Submission{
		Kind:           entity.KindPrizeClaim,
		TournamentID:   f.TournamentID,
		TournamentCode: f.TournamentCode,
		PrizeType:      f.PrizeType,
		Amount:         f.Amount,
		PlayerName:     f.PlayerName,
		PlayerID:       f.PlayerID,
		Kills:          f.Kills,
		Position:       f.Position,
		Notes:          f.Notes,
	}
}

// WithdrawalRequest is the JSON body of POST /api/withdraw
type WithdrawalRequest struct {
	Amount        FlexibleAmount `json:"amount"`
	PaymentMethod string         `json:"paymentMethod"`
	AccountNumber string         `json:"accountNumber"`
}

// Submission converts the body into a domain submission
func (r WithdrawalRequest) Submission() entity.Submission {
	return entity.Submission{
		Kind:          entity.KindWithdrawal,
		Amount:        r.Amount.String(),
		PaymentMethod: r.PaymentMethod,
		AccountNumber: r.AccountNumber,
	}
}

// ReviewRequest is the body of the approve, reject and process endpoints. Status is only
// read by the process endpoints; amount, accountNumber and paymentMethod override the
// submitted values on approval.
type ReviewRequest struct {
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	Version       *int64          `json:"version"`
	Amount        *FlexibleAmount `json:"amount"`
	AccountNumber *string         `json:"accountNumber"`
	PaymentMethod *string         `json:"paymentMethod"`
}

// ActionFromStatus resolves the status requested on a process endpoint
func (r ReviewRequest) ActionFromStatus() (usecase.ProcessAction, error) {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case string(entity.StatusApproved), string(entity.StatusCompleted), string(usecase.ActionApprove):
		return usecase.ActionApprove, nil
	case string(entity.StatusRejected), string(usecase.ActionReject):
		return usecase.ActionReject, nil
	}
	verr := domainerr.NewValidationError("review")
	verr.Add("status", "must be one of approved, completed, rejected")
	return "", verr
}

// Overrides parses the approval overrides. Empty values mean "keep the submitted value".
func (r ReviewRequest) Overrides() (entity.ApprovalOverrides, error) {
	var overrides entity.ApprovalOverrides
	verr := domainerr.NewValidationError("review")

	if r.Amount != nil && r.Amount.String() != "" {
		amount, err := entity.ParsePositiveAmount(r.Amount.String(), 1)
		if err != nil {
			verr.Add("amount", err.Error())
		} else {
			overrides.Amount = &amount
		}
	}
	if r.AccountNumber != nil && strings.TrimSpace(*r.AccountNumber) != "" {
		accountNumber := strings.TrimSpace(*r.AccountNumber)
		if len(accountNumber) > entity.MaxAccountNumberLen {
			verr.Add("accountNumber", "must be at most "+strconv.Itoa(entity.MaxAccountNumberLen)+" characters")
		} else {
			overrides.AccountNumber = &accountNumber
		}
	}
	if r.PaymentMethod != nil && strings.TrimSpace(*r.PaymentMethod) != "" {
		method, ok := entity.ParsePaymentMethod(*r.PaymentMethod)
		if !ok {
			verr.Add("paymentMethod", "must be one of bkash, nagad")
		} else {
			overrides.PaymentMethod = &method
		}
	}

	if err := verr.OrNil(); err != nil {
		return entity.ApprovalOverrides{}, err
	}
	return overrides, nil
}

// DistributeRequest is the body of POST /api/prizes/distribute
type DistributeRequest struct {
	TournamentID string         `json:"tournamentId"`
	UserID       string         `json:"userId"`
	PrizeType    string         `json:"prizeType"`
	Amount       FlexibleAmount `json:"amount"`
	Kills        *int           `json:"kills"`
	Position     *int           `json:"position"`
	Notes        string         `json:"notes"`
}

// Command converts the body into a use case command
func (r DistributeRequest) Command() usecase.DistributeCommand {
	return usecase.DistributeCommand{
		TournamentID: r.TournamentID,
		UserID:       r.UserID,
		PrizeType:    r.PrizeType,
		Amount:       r.Amount.String(),
		Kills:        r.Kills,
		Position:     r.Position,
		Notes:        r.Notes,
	}
}

// FinancialRequestResponse is a top-up, withdrawal or prize claim as returned by the API
type FinancialRequestResponse struct {
	ID             string             `json:"id"`
	Kind           string             `json:"kind"`
	UserID         string             `json:"userId"`
	UserName       string             `json:"userName,omitempty"`
	Amount         string             `json:"amount"`
	Status         string             `json:"status"`
	Badge          entity.StatusBadge `json:"badge"`
	PaymentMethod  string             `json:"paymentMethod,omitempty"`
	AccountNumber  string             `json:"accountNumber,omitempty"`
	TransactionID  string             `json:"transactionId,omitempty"`
	ProofImage     string             `json:"proofImage,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	ClaimNotes     string             `json:"claimNotes,omitempty"`
	TournamentID   string             `json:"tournamentId,omitempty"`
	TournamentCode string             `json:"tournamentCode,omitempty"`
	PrizeType      string             `json:"prizeType,omitempty"`
	PlayerName     string             `json:"playerName,omitempty"`
	PlayerID       string             `json:"playerID,omitempty"`
	Kills          *int               `json:"kills,omitempty"`
	Position       *int               `json:"position,omitempty"`
	ProcessedBy    string             `json:"processedBy,omitempty"`
	ProcessedAt    *time.Time         `json:"processedAt,omitempty"`
	Version        int64              `json:"version"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// NewFinancialRequestResponse maps a domain request to its API shape
func NewFinancialRequestResponse(r *entity.FinancialRequest) FinancialRequestResponse {
	return FinancialRequestResponse{
		ID:             r.ID,
		Kind:           string(r.Kind),
		UserID:         r.RequesterID,
		UserName:       r.RequesterName,
		Amount:         entity.FormatAmount(r.Amount),
		Status:         string(r.Status),
		Badge:          r.Badge(),
		PaymentMethod:  string(r.PaymentMethod),
		AccountNumber:  r.AccountNumber,
		TransactionID:  r.TransactionRef,
		ProofImage:     r.ProofImage,
		Notes:          r.Notes,
		ClaimNotes:     r.ClaimNotes,
		TournamentID:   r.TournamentID,
		TournamentCode: r.TournamentCode,
		PrizeType:      string(r.PrizeType),
		PlayerName:     r.PlayerName,
		PlayerID:       r.PlayerID,
		Kills:          r.Kills,
		Position:       r.Position,
		ProcessedBy:    r.ProcessedBy,
		ProcessedAt:    r.ProcessedAt,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// TopUpListResponse is the page shape of the top-up listings
type TopUpListResponse struct {
	TopUps     []FinancialRequestResponse `json:"topUps"`
	Pagination entity.PageInfo            `json:"pagination"`
}

// WithdrawalListResponse is the page shape of the withdrawal listings
type WithdrawalListResponse struct {
	Withdrawals []FinancialRequestResponse `json:"withdrawals"`
	Pagination  entity.PageInfo            `json:"pagination"`
}

// PrizeListResponse is the page shape of the prize claim listings
type PrizeListResponse struct {
	Prizes     []FinancialRequestResponse `json:"prizes"`
	Pagination entity.PageInfo            `json:"pagination"`
}

// NewRequestListResponse wraps a page of requests in the list shape of its kind
func NewRequestListResponse(kind entity.RequestKind, page *entity.Page[*entity.FinancialRequest]) any {
	items := make([]FinancialRequestResponse, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, NewFinancialRequestResponse(r))
	}

	switch kind {
	case entity.KindWithdrawal:
		return WithdrawalListResponse{Withdrawals: items, Pagination: page.Info}
	case entity.KindPrizeClaim:
		return PrizeListResponse{Prizes: items, Pagination: page.Info}
	default:
		return TopUpListResponse{TopUps: items, Pagination: page.Info}
	}
}
