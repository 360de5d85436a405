package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeValidation          = 4003
	CodeDuplicateReference  = 4004
	CodeConstraintViolation = 4005
	CodeAmountOverflow      = 4006
	CodeUnauthorized        = 4010
	CodeForbidden           = 4030
	CodeAccountNotFound     = 4040
	CodeRequestNotFound     = 4041
	CodeTournamentNotFound  = 4042
	CodeNotFound            = 4044
	CodeAlreadyProcessed    = 4090
	CodeVersionConflict     = 4091
	CodeAlreadyRegistered   = 4092
	CodeAlreadyReferred     = 4093
	CodeProofTooLarge       = 4130
	CodeUnsupportedProof    = 4150
	CodeRateLimited         = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when an account cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when an amount is not a decimal with at most two fractional digits
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is zero or negative
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrAmountBelowMinimum is returned when an amount is under the configured minimum
	ErrAmountBelowMinimum = errors.New("amount is below the minimum")

	// ErrAmountOverflow is returned when the amount does not fit in int64 minor units
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrValidation is returned when a submission fails its per-kind schema
	ErrValidation = errors.New("validation failed")

	// ErrInvalidKind is returned for an unknown financial request kind
	ErrInvalidKind = errors.New("invalid request kind")

	// ErrInvalidStatus is returned for a status that is not valid for the request kind
	ErrInvalidStatus = errors.New("invalid request status")

	// ErrAlreadyProcessed is returned when a terminal request is asked to transition again
	ErrAlreadyProcessed = errors.New("request has already been processed")

	// ErrVersionConflict is returned when the caller's expected version is stale
	ErrVersionConflict = errors.New("request was modified concurrently")

	// ErrDuplicateReference is returned when a payment reference was already submitted
	ErrDuplicateReference = errors.New("payment reference already submitted")

	// ErrAccountNotFound is returned when the wallet account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrRequestNotFound is returned when the financial request doesn't exist
	ErrRequestNotFound = errors.New("request not found")

	// ErrTournamentNotFound is returned when the tournament doesn't exist
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrRecipientNotFound is returned when no account matches a transfer recipient
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrSelfTransfer is returned when sender and recipient are the same account
	ErrSelfTransfer = errors.New("cannot transfer to yourself")

	// ErrTournamentClosed is returned when registering for an inactive or completed tournament
	ErrTournamentClosed = errors.New("tournament is not open for registration")

	// ErrTournamentFull is returned when the tournament reached its player limit
	ErrTournamentFull = errors.New("tournament is full")

	// ErrAlreadyRegistered is returned when the player already joined the tournament
	ErrAlreadyRegistered = errors.New("already registered for this tournament")

	// ErrInvalidReferralCode is returned for an unknown referral code
	ErrInvalidReferralCode = errors.New("invalid referral code")

	// ErrSelfReferral is returned when a user applies their own code
	ErrSelfReferral = errors.New("cannot use your own referral code")

	// ErrAlreadyReferred is returned when the account already has a referrer
	ErrAlreadyReferred = errors.New("referral already processed")

	// ErrProofTooLarge is returned when the proof image exceeds the upload limit
	ErrProofTooLarge = errors.New("proof image is too large")

	// ErrUnsupportedProof is returned when the proof is not a supported image
	ErrUnsupportedProof = errors.New("unsupported proof image type")

	// ErrUnauthorized is returned when the bearer token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the principal lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited is returned when a caller exceeds the submission rate
	ErrRateLimited = errors.New("too many requests")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrAmountBelowMinimum):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidKind),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrSelfTransfer),
		errors.Is(err, ErrSelfReferral),
		errors.Is(err, ErrInvalidReferralCode),
		errors.Is(err, ErrTournamentClosed),
		errors.Is(err, ErrTournamentFull):
		return CodeValidation
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrVersionConflict):
		return CodeVersionConflict
	case errors.Is(err, ErrAlreadyRegistered):
		return CodeAlreadyRegistered
	case errors.Is(err, ErrAlreadyReferred):
		return CodeAlreadyReferred
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrRecipientNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrRequestNotFound):
		return CodeRequestNotFound
	case errors.Is(err, ErrTournamentNotFound):
		return CodeTournamentNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrProofTooLarge):
		return CodeProofTooLarge
	case errors.Is(err, ErrUnsupportedProof):
		return CodeUnsupportedProof
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// FieldError describes one rejected field of a submission
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects the field errors of a single submission
type ValidationError struct {
	Kind   string
	Fields []FieldError
}

// NewValidationError creates an empty validation error for the given kind
func NewValidationError(kind string) *ValidationError {
	return &ValidationError{Kind: kind}
}

// Add records a rejected field
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors reports whether any field was rejected
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns the error only when at least one field was rejected
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Kind, strings.Join(parts, "; "))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"kind":       e.Kind,
		"fields":     e.Fields,
		"error_code": CodeValidation,
	}
}

// TransitionError describes a rejected status transition of a financial request
type TransitionError struct {
	RequestID string
	Kind      string
	From      string
	To        string
	Err       error
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move %s request %s from %s to %s: %v", e.Kind, e.RequestID, e.From, e.To, e.Err)
}

// Unwrap returns the underlying error
func (e *TransitionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transition_error",
		"request_id": e.RequestID,
		"kind":       e.Kind,
		"from":       e.From,
		"to":         e.To,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransitionError creates a detailed transition error
func NewTransitionError(requestID, kind, from, to string, err error) error {
	return &TransitionError{RequestID: requestID, Kind: kind, From: from, To: to, Err: err}
}

// VersionConflictError reports the stale and current versions of a request
type VersionConflictError struct {
	RequestID string
	Expected  int64
	Actual    int64
}

// Error implements the error interface
func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("request %s: expected version %d, current version %d", e.RequestID, e.Expected, e.Actual)
}

// Is checks if the target error is an ErrVersionConflict
func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// LogFields returns a map of fields for structured logging
func (e *VersionConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "version_conflict",
		"request_id":       e.RequestID,
		"expected_version": e.Expected,
		"actual_version":   e.Actual,
		"error_code":       CodeVersionConflict,
	}
}

// NewVersionConflictError creates a version conflict error
func NewVersionConflictError(requestID string, expected, actual int64) error {
	return &VersionConflictError{RequestID: requestID, Expected: expected, Actual: actual}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// LogFielder is implemented by errors that carry structured logging context
type LogFielder interface {
	LogFields() map[string]any
}

// LogFieldsOf returns the structured fields of err, falling back to its message
func LogFieldsOf(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error(), "error_code": ErrorCode(err)}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrTournamentNotFound) ||
		errors.Is(err, ErrRecipientNotFound)
}

// IsConflictError checks if the error is a state conflict that the caller may resolve by refetching
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed) ||
		errors.Is(err, ErrVersionConflict) ||
		errors.Is(err, ErrDuplicateReference) ||
		errors.Is(err, ErrAlreadyRegistered) ||
		errors.Is(err, ErrAlreadyReferred)
}

// IsClientError checks if the error was caused by the caller's input
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}
