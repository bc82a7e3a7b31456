package model

import (
	"context"
	"time"
)

// ActivityLog is a best-effort audit sink. Implementations must not block callers or report failures.
type ActivityLog interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

// ActivityEntry is a persisted audit event.
type ActivityEntry struct {
	ID         string
	Event      string
	Payload    map[string]any
	OccurredAt time.Time
}
