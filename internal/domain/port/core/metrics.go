package core

// MetricsRecorder records business counters for the request lifecycle
type MetricsRecorder interface {
	// RequestSubmitted counts a new request of the given kind
	RequestSubmitted(kind string)
	// RequestProcessed counts a terminal transition and its amount in minor units
	RequestProcessed(kind, status string, amount int64)
	// TransitionConflict counts a rejected concurrent or repeated transition
	TransitionConflict(kind, reason string)
	// LedgerPosted counts a balance change by ledger type
	LedgerPosted(ledgerType string, amount int64)
}
