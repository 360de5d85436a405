package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// RequestKind identifies the flavour of a financial request
type RequestKind string

// Request kinds
const (
	KindTopUp      RequestKind = "top-up"
	KindWithdrawal RequestKind = "withdrawal"
	KindPrizeClaim RequestKind = "prize-claim"
)

// RequestKinds lists every supported kind
var RequestKinds = []RequestKind{KindTopUp, KindWithdrawal, KindPrizeClaim}

// ParseRequestKind validates a kind string
func ParseRequestKind(kind string) (RequestKind, error) {
	for _, k := range RequestKinds {
		if string(k) == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", errs.ErrInvalidKind, kind)
}

// IDPrefix returns the prefix used for identifiers of this kind
func (k RequestKind) IDPrefix() string {
	switch k {
	case KindTopUp:
		return "topup"
	case KindWithdrawal:
		return "wdr"
	case KindPrizeClaim:
		return "prize"
	default:
		return "req"
	}
}

// ApprovedStatus is the success status for the kind; withdrawals complete rather than approve
func (k RequestKind) ApprovedStatus() RequestStatus {
	if k == KindWithdrawal {
		return StatusCompleted
	}
	return StatusApproved
}

// RequestStatus is the lifecycle status of a financial request
type RequestStatus string

// Request statuses
const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusCompleted RequestStatus = "completed"
	StatusRejected  RequestStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusCompleted || s == StatusRejected
}

// NormalizeStatusFilter maps a status filter onto the kind's vocabulary.
// "approved" and "completed" are synonyms for withdrawals. An empty result means no filter.
func NormalizeStatusFilter(kind RequestKind, status string) (RequestStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "all":
		return "", nil
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusRejected):
		return StatusRejected, nil
	case string(StatusApproved), string(StatusCompleted):
		return kind.ApprovedStatus(), nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidStatus, status)
	}
}

// PaymentMethod is a mobile-money provider
type PaymentMethod string

// Supported payment methods
const (
	PaymentBkash PaymentMethod = "bkash"
	PaymentNagad PaymentMethod = "nagad"
)

// ParsePaymentMethod validates a payment method string
func ParsePaymentMethod(method string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(method))) {
	case PaymentBkash:
		return PaymentBkash, true
	case PaymentNagad:
		return PaymentNagad, true
	}
	return "", false
}

// PrizeType classifies a prize claim
type PrizeType string

// Prize types
const (
	PrizeKill   PrizeType = "kill_prize"
	PrizeWinner PrizeType = "winner_prize"
	PrizeBoth   PrizeType = "both"
	PrizeOther  PrizeType = "other"
)

// ParsePrizeType validates a prize type string
func ParsePrizeType(prizeType string) (PrizeType, bool) {
	switch p := PrizeType(strings.TrimSpace(prizeType)); p {
	case PrizeKill, PrizeWinner, PrizeBoth, PrizeOther:
		return p, true
	}
	return "", false
}

// FinancialRequest is a top-up, withdrawal or prize claim awaiting or past admin review
type FinancialRequest struct {
	ID             string
	RequesterID    string
	RequesterName  string
	Kind           RequestKind
	Amount         int64 // minor units
	Status         RequestStatus
	PaymentMethod  PaymentMethod
	AccountNumber  string
	TransactionRef string // external payment reference, top-up only
	ProofImage     string
	Notes          string // admin notes
	ClaimNotes     string // requester notes, prize claim only
	TournamentID   string
	TournamentCode string
	PrizeType      PrizeType
	PlayerName     string
	PlayerID       string
	Kills          *int
	Position       *int
	ProcessedBy    string
	ProcessedAt    *time.Time
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFinancialRequest builds a pending request from a validated submission
func NewFinancialRequest(
	id string,
	requester Principal,
	sub Submission,
	values *SubmissionValues,
	proofRef string,
	timeProvider coreport.TimeProvider,
) *FinancialRequest {
	now := timeProvider.Now()
	return &FinancialRequest{
		ID:             id,
		RequesterID:    requester.UserID,
		RequesterName:  requester.Name,
		Kind:           sub.Kind,
		Amount:         values.Amount,
		Status:         StatusPending,
		PaymentMethod:  values.PaymentMethod,
		AccountNumber:  strings.TrimSpace(sub.AccountNumber),
		TransactionRef: strings.TrimSpace(sub.TransactionRef),
		ProofImage:     proofRef,
		ClaimNotes:     strings.TrimSpace(sub.Notes),
		TournamentID:   strings.TrimSpace(sub.TournamentID),
		TournamentCode: strings.TrimSpace(sub.TournamentCode),
		PrizeType:      values.PrizeType,
		PlayerName:     strings.TrimSpace(sub.PlayerName),
		PlayerID:       strings.TrimSpace(sub.PlayerID),
		Kills:          values.Kills,
		Position:       values.Position,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ApprovalOverrides are the fields an admin may correct before approving
type ApprovalOverrides struct {
	Amount        *int64
	AccountNumber *string
	PaymentMethod *PaymentMethod
}

// IsEmpty reports whether no override was supplied
func (o ApprovalOverrides) IsEmpty() bool {
	return o.Amount == nil && o.AccountNumber == nil && o.PaymentMethod == nil
}

// CheckVersion fails when expected is set and differs from the current version
func (r *FinancialRequest) CheckVersion(expected int64) error {
	if expected > 0 && expected != r.Version {
		return errs.NewVersionConflictError(r.ID, expected, r.Version)
	}
	return nil
}

// Approve moves a pending request to its kind's success status. An amount override must
// still meet minAmount.
func (r *FinancialRequest) Approve(
	adminID string,
	overrides ApprovalOverrides,
	minAmount int64,
	notes string,
	timeProvider coreport.TimeProvider,
) error {
	target := r.Kind.ApprovedStatus()
	if r.Status.IsTerminal() {
		return errs.NewTransitionError(r.ID, string(r.Kind), string(r.Status), string(target), errs.ErrAlreadyProcessed)
	}

	if !overrides.IsEmpty() {
		if r.Kind == KindWithdrawal {
			verr := errs.NewValidationError(string(r.Kind))
			verr.Add("overrides", "withdrawals are approved as submitted")
			return verr
		}
		if overrides.Amount != nil {
			if *overrides.Amount <= 0 {
				verr := errs.NewValidationError(string(r.Kind))
				verr.Add("amount", "must be positive")
				return verr
			}
			if *overrides.Amount < minAmount {
				verr := errs.NewValidationError(string(r.Kind))
				verr.Add("amount", "minimum is "+FormatAmount(minAmount))
				return verr
			}
			r.Amount = *overrides.Amount
		}
		if overrides.AccountNumber != nil {
			r.AccountNumber = strings.TrimSpace(*overrides.AccountNumber)
		}
		if overrides.PaymentMethod != nil {
			r.PaymentMethod = *overrides.PaymentMethod
		}
	}

	r.finish(target, adminID, notes, timeProvider)
	return nil
}

// Reject moves a pending request to rejected; a reason is mandatory
func (r *FinancialRequest) Reject(adminID, notes string, timeProvider coreport.TimeProvider) error {
	if r.Status.IsTerminal() {
		return errs.NewTransitionError(r.ID, string(r.Kind), string(r.Status), string(StatusRejected), errs.ErrAlreadyProcessed)
	}
	if strings.TrimSpace(notes) == "" {
		verr := errs.NewValidationError(string(r.Kind))
		verr.Add("notes", "a rejection reason is required")
		return verr
	}

	r.finish(StatusRejected, adminID, notes, timeProvider)
	return nil
}

func (r *FinancialRequest) finish(status RequestStatus, adminID, notes string, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	r.Status = status
	r.Notes = strings.TrimSpace(notes)
	r.ProcessedBy = adminID
	r.ProcessedAt = &now
	r.UpdatedAt = now
	r.Version++
}

// BalanceEffect is the wallet change caused by a lifecycle step. A zero Amount means none.
type BalanceEffect struct {
	Type   LedgerType
	Amount int64 // signed minor units
}

// None reports whether the effect leaves the balance untouched
func (e BalanceEffect) None() bool {
	return e.Amount == 0
}

// SubmissionEffect is the reservation taken when the request is filed
func (r *FinancialRequest) SubmissionEffect() BalanceEffect {
	if r.Kind == KindWithdrawal {
		return BalanceEffect{Type: LedgerWithdrawal, Amount: -r.Amount}
	}
	return BalanceEffect{}
}

// SettlementEffect is the balance change implied by the current terminal status
func (r *FinancialRequest) SettlementEffect() BalanceEffect {
	switch {
	case r.Kind == KindTopUp && r.Status == StatusApproved:
		return BalanceEffect{Type: LedgerTopUp, Amount: r.Amount}
	case r.Kind == KindPrizeClaim && r.Status == StatusApproved:
		return BalanceEffect{Type: LedgerPrize, Amount: r.Amount}
	case r.Kind == KindWithdrawal && r.Status == StatusRejected:
		return BalanceEffect{Type: LedgerRefund, Amount: r.Amount}
	}
	return BalanceEffect{}
}

// Badge returns the display badge for the request
func (r *FinancialRequest) Badge() StatusBadge {
	return BadgeFor(r.Kind, r.Status)
}

// NotApplicable fills payment fields that have no meaning for a distributed prize
const NotApplicable = "N/A"

// NewDistributedPrize builds a prize claim that an admin grants directly; it is approved on creation
func NewDistributedPrize(
	id string,
	tournament *Tournament,
	winner *Account,
	admin Principal,
	amount int64,
	prizeType PrizeType,
	kills, position *int,
	notes string,
	timeProvider coreport.TimeProvider,
) *FinancialRequest {
	now := timeProvider.Now()
	return &FinancialRequest{
		ID:             id,
		RequesterID:    winner.UserID,
		RequesterName:  winner.Name,
		Kind:           KindPrizeClaim,
		Amount:         amount,
		Status:         StatusApproved,
		PaymentMethod:  PaymentMethod(NotApplicable),
		AccountNumber:  NotApplicable,
		Notes:          strings.TrimSpace(notes),
		TournamentID:   tournament.ID,
		TournamentCode: tournament.TournamentCode,
		PrizeType:      prizeType,
		PlayerName:     NotApplicable,
		PlayerID:       NotApplicable,
		Kills:          kills,
		Position:       position,
		ProcessedBy:    admin.UserID,
		ProcessedAt:    &now,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
