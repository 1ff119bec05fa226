package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ralphbot-analytics/internal/heartbeat/core/ports"
)

var ErrUnknownBotType = errors.New("unknown bot type")

const defaultBotType = "streamlit"

var knownBotTypes = map[string]struct{}{
	"streamlit": {},
	"slack":     {},
}

type RecordHeartbeatUseCase struct {
	repo ports.StatusWriterPort
	now  func() time.Time
}

func NewRecordHeartbeatUseCase(repo ports.StatusWriterPort) *RecordHeartbeatUseCase {
	return &RecordHeartbeatUseCase{repo: repo, now: time.Now}
}

// WithClock overrides the time source for tests.
func (uc *RecordHeartbeatUseCase) WithClock(now func() time.Time) *RecordHeartbeatUseCase {
	uc.now = now
	return uc
}

// Execute upserts the bot's last_heartbeat to now. An empty bot type means
// "streamlit", matching the historical producers.
func (uc *RecordHeartbeatUseCase) Execute(ctx context.Context, botType string) error {
	botType = strings.ToLower(strings.TrimSpace(botType))
	if botType == "" {
		botType = defaultBotType
	}
	if _, ok := knownBotTypes[botType]; !ok {
		return ErrUnknownBotType
	}

	return uc.repo.UpsertHeartbeat(ctx, botType, uc.now().UTC())
}
