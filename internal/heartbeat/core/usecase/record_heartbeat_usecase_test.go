package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ralphbot-analytics/internal/heartbeat/core/usecase"
)

type fakeStatusWriter struct {
	failWith    error
	calls       int
	lastBotType string
	lastAt      time.Time
}

func (f *fakeStatusWriter) UpsertHeartbeat(ctx context.Context, botType string, at time.Time) error {
	f.calls++
	f.lastBotType = botType
	f.lastAt = at
	return f.failWith
}

var testNow = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func TestRecordHeartbeat_UpsertsWithCurrentTime(t *testing.T) {
	repo := &fakeStatusWriter{}
	uc := usecase.NewRecordHeartbeatUseCase(repo).WithClock(testClock)

	if err := uc.Execute(context.Background(), "slack"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastBotType != "slack" {
		t.Fatalf("expected slack, got %q", repo.lastBotType)
	}
	if !repo.lastAt.Equal(testNow) {
		t.Fatalf("expected heartbeat at now, got %v", repo.lastAt)
	}
}

func TestRecordHeartbeat_NormalizesCase(t *testing.T) {
	repo := &fakeStatusWriter{}
	uc := usecase.NewRecordHeartbeatUseCase(repo).WithClock(testClock)

	if err := uc.Execute(context.Background(), "  Streamlit "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastBotType != "streamlit" {
		t.Fatalf("expected streamlit, got %q", repo.lastBotType)
	}
}

func TestRecordHeartbeat_EmptyDefaultsToStreamlit(t *testing.T) {
	repo := &fakeStatusWriter{}
	uc := usecase.NewRecordHeartbeatUseCase(repo).WithClock(testClock)

	if err := uc.Execute(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastBotType != "streamlit" {
		t.Fatalf("expected streamlit default, got %q", repo.lastBotType)
	}
}

func TestRecordHeartbeat_RejectsUnknownBotType(t *testing.T) {
	repo := &fakeStatusWriter{}
	uc := usecase.NewRecordHeartbeatUseCase(repo).WithClock(testClock)

	err := uc.Execute(context.Background(), "discord")
	if !errors.Is(err, usecase.ErrUnknownBotType) {
		t.Fatalf("expected ErrUnknownBotType, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repository should not be called on invalid input")
	}
}

func TestRecordHeartbeat_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeStatusWriter{failWith: errors.New("db failure")}
	uc := usecase.NewRecordHeartbeatUseCase(repo).WithClock(testClock)

	if err := uc.Execute(context.Background(), "slack"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRecordHeartbeat_RapidSuccessionIsLastWriteWins(t *testing.T) {
	repo := &fakeStatusWriter{}
	uc := usecase.NewRecordHeartbeatUseCase(repo)

	later := testNow.Add(time.Second)
	uc.WithClock(testClock)
	if err := uc.Execute(context.Background(), "slack"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.WithClock(func() time.Time { return later })
	if err := uc.Execute(context.Background(), "slack"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.calls != 2 {
		t.Fatalf("expected two upserts, got %d", repo.calls)
	}
	if !repo.lastAt.Equal(later) {
		t.Fatalf("expected the later timestamp to be the final write, got %v", repo.lastAt)
	}
}
