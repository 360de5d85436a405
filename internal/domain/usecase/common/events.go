package common

import (
	"context"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// PublishAfterCommit delivers an event once state is durable. Failures are logged only.
func PublishAfterCommit(ctx context.Context, publisher coreport.EventPublisher, logger coreport.Logger, event coreport.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event", map[string]any{
			"event_type": string(event.Type),
			"entity_id":  event.EntityID,
			"error":      err.Error(),
		})
	}
}
