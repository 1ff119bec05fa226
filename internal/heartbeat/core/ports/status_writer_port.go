package ports

import (
	"context"
	"time"
)

// StatusWriterPort upserts the per-bot liveness row. The write is keyed by
// bot type and last-write-wins, so concurrent heartbeats are idempotent.
type StatusWriterPort interface {
	UpsertHeartbeat(ctx context.Context, botType string, at time.Time) error
}
