package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// Event types
const (
	EventRequestSubmitted  coreport.EventType = "request.submitted"
	EventRequestApproved   coreport.EventType = "request.approved"
	EventRequestRejected   coreport.EventType = "request.rejected"
	EventPrizeDistributed  coreport.EventType = "prize.distributed"
	EventTransferCompleted coreport.EventType = "transfer.completed"
	EventReferralCredited  coreport.EventType = "referral.credited"
	EventPlayerRegistered  coreport.EventType = "tournament.registered"
)

// RequestEvent builds the event for a request lifecycle step
func RequestEvent(eventType coreport.EventType, r *FinancialRequest, actorID string, at time.Time) coreport.Event {
	return coreport.Event{
		Type:       eventType,
		EntityID:   r.ID,
		Kind:       string(r.Kind),
		Status:     string(r.Status),
		UserID:     r.RequesterID,
		ActorID:    actorID,
		Amount:     FormatAmount(r.Amount),
		OccurredAt: at,
	}
}

// TransitionEventType picks the event for a terminal status
func TransitionEventType(status RequestStatus) coreport.EventType {
	if status == StatusRejected {
		return EventRequestRejected
	}
	return EventRequestApproved
}
