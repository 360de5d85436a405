package entity

import (
	"errors"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
)

// Field limits shared by every submission kind
const (
	MaxAccountNumberLen = 64
	MaxTransactionIDLen = 64
	MaxPlayerNameLen    = 100
	MaxPlayerIDLen      = 64
	MaxNotesLen         = 500
)

// Submission is the raw, untrusted input of a new financial request
type Submission struct {
	Kind           RequestKind
	Amount         string
	PaymentMethod  string
	AccountNumber  string
	TransactionRef string
	ProofAttached  bool
	TournamentID   string
	TournamentCode string
	PrizeType      string
	PlayerName     string
	PlayerID       string
	Kills          string
	Position       string
	Notes          string
}

// SubmissionValues holds the typed values extracted while validating a submission
type SubmissionValues struct {
	Amount        int64
	PaymentMethod PaymentMethod
	PrizeType     PrizeType
	Kills         *int
	Position      *int
}

type fieldRule func(s Submission, v *SubmissionValues, verr *errs.ValidationError)

// submissionSchemas is the single validation schema per kind
var submissionSchemas = map[RequestKind][]fieldRule{
	KindTopUp: {
		paymentMethodRule,
		requiredRule("accountNumber", func(s Submission) string { return s.AccountNumber }, MaxAccountNumberLen),
		optionalRule("transactionId", func(s Submission) string { return s.TransactionRef }, MaxTransactionIDLen),
		proofRule("slipImage"),
	},
	KindWithdrawal: {
		paymentMethodRule,
		requiredRule("accountNumber", func(s Submission) string { return s.AccountNumber }, MaxAccountNumberLen),
	},
	KindPrizeClaim: {
		requiredRule("tournamentId", func(s Submission) string { return s.TournamentID }, 64),
		requiredRule("tournamentCode", func(s Submission) string { return s.TournamentCode }, 64),
		prizeTypeRule,
		requiredRule("playerName", func(s Submission) string { return s.PlayerName }, MaxPlayerNameLen),
		requiredRule("playerID", func(s Submission) string { return s.PlayerID }, MaxPlayerIDLen),
		countRule("kills", func(s Submission) string { return s.Kills }, func(v *SubmissionValues, n *int) { v.Kills = n }),
		countRule("position", func(s Submission) string { return s.Position }, func(v *SubmissionValues, n *int) { v.Position = n }),
		optionalRule("notes", func(s Submission) string { return s.Notes }, MaxNotesLen),
		proofRule("proofImage"),
	},
}

// Validate runs the kind's schema and reports every failing field at once
func (s Submission) Validate(minAmount int64) (*SubmissionValues, error) {
	schema, ok := submissionSchemas[s.Kind]
	if !ok {
		return nil, errs.ErrInvalidKind
	}

	verr := errs.NewValidationError(string(s.Kind))
	values := &SubmissionValues{}

	amount, err := ParsePositiveAmount(s.Amount, minAmount)
	if err != nil {
		verr.Add("amount", amountReason(err))
	}
	values.Amount = amount

	for _, rule := range schema {
		rule(s, values, verr)
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return values, nil
}

func amountReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrAmountBelowMinimum):
		return err.Error()
	case errors.Is(err, errs.ErrNegativeAmount):
		return "must be positive"
	case errors.Is(err, errs.ErrAmountOverflow):
		return "is too large"
	default:
		return "must be a decimal number with at most 2 decimal places"
	}
}

func paymentMethodRule(s Submission, v *SubmissionValues, verr *errs.ValidationError) {
	if strings.TrimSpace(s.PaymentMethod) == "" {
		verr.Add("paymentMethod", "is required")
		return
	}
	method, ok := ParsePaymentMethod(s.PaymentMethod)
	if !ok {
		verr.Add("paymentMethod", "must be one of bkash, nagad")
		return
	}
	v.PaymentMethod = method
}

func prizeTypeRule(s Submission, v *SubmissionValues, verr *errs.ValidationError) {
	if strings.TrimSpace(s.PrizeType) == "" {
		verr.Add("prizeType", "is required")
		return
	}
	prizeType, ok := ParsePrizeType(s.PrizeType)
	if !ok {
		verr.Add("prizeType", "must be one of kill_prize, winner_prize, both, other")
		return
	}
	v.PrizeType = prizeType
}

func requiredRule(field string, get func(Submission) string, maxLen int) fieldRule {
	return func(s Submission, _ *SubmissionValues, verr *errs.ValidationError) {
		value := strings.TrimSpace(get(s))
		switch {
		case value == "":
			verr.Add(field, "is required")
		case len(value) > maxLen:
			verr.Add(field, "must be at most "+strconv.Itoa(maxLen)+" characters")
		}
	}
}

func optionalRule(field string, get func(Submission) string, maxLen int) fieldRule {
	return func(s Submission, _ *SubmissionValues, verr *errs.ValidationError) {
		if len(strings.TrimSpace(get(s))) > maxLen {
			verr.Add(field, "must be at most "+strconv.Itoa(maxLen)+" characters")
		}
	}
}

func countRule(field string, get func(Submission) string, set func(*SubmissionValues, *int)) fieldRule {
	return func(s Submission, v *SubmissionValues, verr *errs.ValidationError) {
		raw := strings.TrimSpace(get(s))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			verr.Add(field, "must be a non-negative integer")
			return
		}
		set(v, &n)
	}
}

func proofRule(field string) fieldRule {
	return func(s Submission, _ *SubmissionValues, verr *errs.ValidationError) {
		if !s.ProofAttached {
			verr.Add(field, "is required")
		}
	}
}
