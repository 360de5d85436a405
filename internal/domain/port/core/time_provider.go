package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so lifecycle timestamps are testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
