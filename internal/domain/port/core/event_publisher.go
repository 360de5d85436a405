package core

import (
	"context"
	"time"
)

// EventType names a lifecycle event published after commit
type EventType string

// Event is the payload published for downstream consumers
type Event struct {
	Type       EventType `json:"type"`
	EntityID   string    `json:"entityId"`
	Kind       string    `json:"kind,omitempty"`
	Status     string    `json:"status,omitempty"`
	UserID     string    `json:"userId"`
	ActorID    string    `json:"actorId,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher delivers lifecycle events to downstream consumers.
// Publishing happens after commit; callers log failures instead of rolling back.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
