package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ralphbot-analytics/internal/analytics/core/domain"
	"ralphbot-analytics/internal/analytics/core/usecase"
)

var testNow = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeDataSource records calls and can be forced to fail.
type fakeDataSource struct {
	failWith error

	lastWindow  domain.Window
	lastBotType string
	lastLimit   int
	calls       int

	countResult   int64
	uniqueResult  int64
	avgResult     float64
	dailyResult   []domain.DailyActivity
	topResult     []domain.QueryCount
	recentResult  []domain.Interaction
	samplesResult []int64
	statusResult  *domain.BotStatus
}

func (f *fakeDataSource) record(w domain.Window, botType string, limit int) error {
	f.calls++
	f.lastWindow = w
	f.lastBotType = botType
	f.lastLimit = limit
	return f.failWith
}

func (f *fakeDataSource) CountInteractions(ctx context.Context, w domain.Window, botType string) (int64, error) {
	return f.countResult, f.record(w, botType, 0)
}

func (f *fakeDataSource) CountUniqueUsers(ctx context.Context, w domain.Window, botType string) (int64, error) {
	return f.uniqueResult, f.record(w, botType, 0)
}

func (f *fakeDataSource) AverageResponseTime(ctx context.Context, w domain.Window, botType string) (float64, error) {
	return f.avgResult, f.record(w, botType, 0)
}

func (f *fakeDataSource) DailyActivity(ctx context.Context, w domain.Window) ([]domain.DailyActivity, error) {
	return f.dailyResult, f.record(w, "", 0)
}

func (f *fakeDataSource) TopQueries(ctx context.Context, w domain.Window, limit int) ([]domain.QueryCount, error) {
	return f.topResult, f.record(w, "", limit)
}

func (f *fakeDataSource) RecentInteractions(ctx context.Context, w domain.Window, botType string, limit int) ([]domain.Interaction, error) {
	return f.recentResult, f.record(w, botType, limit)
}

func (f *fakeDataSource) ResponseTimeSamples(ctx context.Context, w domain.Window, botType string) ([]int64, error) {
	return f.samplesResult, f.record(w, botType, 0)
}

func (f *fakeDataSource) BotStatus(ctx context.Context, botType string) (*domain.BotStatus, error) {
	return f.statusResult, f.record(domain.Window{}, botType, 0)
}

// ------------------------------------------------------------
// Default window + filter normalization
// ------------------------------------------------------------

func TestRecentInteractions_DefaultWindowAndLimit(t *testing.T) {
	live := &fakeDataSource{}
	uc := usecase.NewDashboardUseCase(live, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	uc.RecentInteractions(context.Background(), usecase.ListInteractionsInput{BotType: "Both"})

	if !live.lastWindow.End.Equal(testNow) {
		t.Fatalf("expected end=now, got %v", live.lastWindow.End)
	}
	if !live.lastWindow.Start.Equal(testNow.AddDate(0, 0, -7)) {
		t.Fatalf("expected start=now-7d, got %v", live.lastWindow.Start)
	}
	if live.lastBotType != "" {
		t.Fatalf("expected Both to mean no filter, got %q", live.lastBotType)
	}
	if live.lastLimit != usecase.DefaultInteractionsLimit {
		t.Fatalf("expected default limit 50, got %d", live.lastLimit)
	}
}

func TestRecentInteractions_FilterIsCaseInsensitive(t *testing.T) {
	live := &fakeDataSource{}
	uc := usecase.NewDashboardUseCase(live, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	uc.RecentInteractions(context.Background(), usecase.ListInteractionsInput{BotType: "SLACK"})

	if live.lastBotType != "slack" {
		t.Fatalf("expected normalized slack, got %q", live.lastBotType)
	}
}

func TestRecentInteractions_MalformedDatesNormalizeToDefault(t *testing.T) {
	live := &fakeDataSource{}
	uc := usecase.NewDashboardUseCase(live, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	uc.RecentInteractions(context.Background(), usecase.ListInteractionsInput{
		StartDate: "2025-06-09",
		EndDate:   "2025-06-01", // inverted
	})

	if !live.lastWindow.Start.Equal(testNow.AddDate(0, 0, -7)) || !live.lastWindow.End.Equal(testNow) {
		t.Fatalf("expected default window on inverted bounds, got %+v", live.lastWindow)
	}
}

func TestRecentInteractions_NeverReturnsNil(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeDataSource{}, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	rows := uc.RecentInteractions(context.Background(), usecase.ListInteractionsInput{})
	if rows == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

// ------------------------------------------------------------
// Metrics composition
// ------------------------------------------------------------

func TestMetrics_ComposesSixFigures(t *testing.T) {
	live := &fakeDataSource{countResult: 12, uniqueResult: 5, avgResult: 432.5}
	uc := usecase.NewDashboardUseCase(live, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	m := uc.Metrics(context.Background(), usecase.WindowInput{})

	if m.TotalStreamlit != 12 || m.TotalSlack != 12 {
		t.Fatalf("unexpected totals: %+v", m)
	}
	if m.UniqueStreamlit != 5 || m.UniqueSlack != 5 {
		t.Fatalf("unexpected uniques: %+v", m)
	}
	if m.AvgStreamlitTime != 432.5 || m.AvgSlackTime != 432.5 {
		t.Fatalf("unexpected averages: %+v", m)
	}
	if live.calls != 6 {
		t.Fatalf("expected 6 store calls, got %d", live.calls)
	}
}

// ------------------------------------------------------------
// Fallback activation
// ------------------------------------------------------------

func TestFallback_ActivatesOnStoreErrorAndSticks(t *testing.T) {
	live := &fakeDataSource{failWith: errors.New("connection refused")}
	fallback := &fakeDataSource{countResult: 7, uniqueResult: 3, avgResult: 100}
	uc := usecase.NewDashboardUseCase(live, fallback, discardLogger()).WithClock(testClock)

	if uc.UsingFallback() {
		t.Fatalf("expected live source at startup")
	}

	m := uc.Metrics(context.Background(), usecase.WindowInput{})
	if m.TotalStreamlit != 7 {
		t.Fatalf("expected fallback figures, got %+v", m)
	}
	if !uc.UsingFallback() {
		t.Fatalf("expected UsingFallback=true after store failure")
	}

	liveCallsAfterFailure := live.calls
	uc.Metrics(context.Background(), usecase.WindowInput{})
	if live.calls != liveCallsAfterFailure {
		t.Fatalf("expected live store not to be retried after degrade")
	}
}

func TestFallback_NilLiveSourceStartsDegraded(t *testing.T) {
	fallback := &fakeDataSource{countResult: 2}
	uc := usecase.NewDashboardUseCase(nil, fallback, discardLogger()).WithClock(testClock)

	if !uc.UsingFallback() {
		t.Fatalf("expected degraded start without a live source")
	}
	m := uc.Metrics(context.Background(), usecase.WindowInput{})
	if m.TotalStreamlit != 2 {
		t.Fatalf("expected fallback result, got %+v", m)
	}
}

func TestFallback_CanceledContextDoesNotStick(t *testing.T) {
	live := &fakeDataSource{failWith: context.Canceled}
	fallback := &fakeDataSource{}
	uc := usecase.NewDashboardUseCase(live, fallback, discardLogger()).WithClock(testClock)

	uc.DailyActivity(context.Background(), usecase.WindowInput{})

	if uc.UsingFallback() {
		t.Fatalf("cancellation must not flip the façade to the fallback")
	}
	if fallback.calls != 1 {
		t.Fatalf("expected the interrupted call to be served by the fallback")
	}
}

// ------------------------------------------------------------
// Response time samples
// ------------------------------------------------------------

func TestResponseTimes_RequiresBotType(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeDataSource{}, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	_, err := uc.ResponseTimes(context.Background(), usecase.ResponseTimesInput{})
	if !errors.Is(err, usecase.ErrBotTypeRequired) {
		t.Fatalf("expected ErrBotTypeRequired, got %v", err)
	}

	// "both" is not a concrete bot either
	_, err = uc.ResponseTimes(context.Background(), usecase.ResponseTimesInput{BotType: "both"})
	if !errors.Is(err, usecase.ErrBotTypeRequired) {
		t.Fatalf("expected ErrBotTypeRequired for both, got %v", err)
	}
}

func TestResponseTimes_ReturnsSamples(t *testing.T) {
	live := &fakeDataSource{samplesResult: []int64{100, 200}}
	uc := usecase.NewDashboardUseCase(live, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	samples, err := uc.ResponseTimes(context.Background(), usecase.ResponseTimesInput{BotType: "Streamlit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if live.lastBotType != "streamlit" {
		t.Fatalf("expected normalized bot type, got %q", live.lastBotType)
	}
}

// ------------------------------------------------------------
// Bot status
// ------------------------------------------------------------

func TestBotStatusReport_RecomputesLiveness(t *testing.T) {
	hb := testNow.Add(-2 * time.Minute)
	live := &fakeDataSource{statusResult: &domain.BotStatus{
		BotType:        "slack",
		LastHeartbeat:  &hb,
		ReportedStatus: "online",
	}}
	uc := usecase.NewDashboardUseCase(live, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	report := uc.BotStatusReport(context.Background(), "slack")
	if report.Liveness != domain.LivenessOnline {
		t.Fatalf("expected online, got %s", report.Liveness)
	}
	if report.Color != "green" {
		t.Fatalf("expected green, got %s", report.Color)
	}
}

func TestBotStatusReport_MissingRowIsUnknown(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeDataSource{}, &fakeDataSource{}, discardLogger()).WithClock(testClock)

	report := uc.BotStatusReport(context.Background(), "streamlit")
	if report.Liveness != domain.LivenessUnknown {
		t.Fatalf("expected unknown, got %s", report.Liveness)
	}
	if report.BotType != "streamlit" {
		t.Fatalf("expected bot type carried through, got %q", report.BotType)
	}
}
