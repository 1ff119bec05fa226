package postgres

import (
	"context"
	"time"

	"ralphbot-analytics/internal/heartbeat/core/ports"
)

type StatusRepository struct {
	db DB
}

func NewStatusRepository(db DB) *StatusRepository {
	return &StatusRepository{db: db}
}

var _ ports.StatusWriterPort = (*StatusRepository)(nil)

// Last write wins on the bot_type key, so concurrent heartbeats from the
// same bot are commutative.
const upsertHeartbeatSQL = `
INSERT INTO bot_status (bot_type, last_heartbeat, status)
VALUES ($1, $2, 'online')
ON CONFLICT (bot_type) DO UPDATE
SET last_heartbeat = EXCLUDED.last_heartbeat,
    status         = EXCLUDED.status;
`

func (r *StatusRepository) UpsertHeartbeat(ctx context.Context, botType string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, upsertHeartbeatSQL, botType, at)
	return err
}
