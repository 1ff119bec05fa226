package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"ralphbot-analytics/internal/analytics/core/domain"
	"ralphbot-analytics/internal/analytics/core/ports"
)

var ErrBotTypeRequired = errors.New("bot_type is required")

const (
	DefaultInteractionsLimit = 50
	DefaultTopQueriesLimit   = 10
)

type WindowInput struct {
	StartDate string
	EndDate   string
}

type ListInteractionsInput struct {
	StartDate string
	EndDate   string
	BotType   string
	Limit     int
}

type TopQueriesInput struct {
	StartDate string
	EndDate   string
	Limit     int
}

type ResponseTimesInput struct {
	StartDate string
	EndDate   string
	BotType   string
}

// DashboardUseCase is the single query surface the presentation layer talks
// to. It reads from the live store while it is healthy and permanently
// switches to the synthetic fallback on the first store failure, so read
// methods always return a value of the documented shape.
type DashboardUseCase struct {
	live     ports.DataSource // nil when the store never came up
	fallback ports.DataSource
	log      *slog.Logger
	degraded atomic.Bool
	now      func() time.Time
}

func NewDashboardUseCase(live, fallback ports.DataSource, log *slog.Logger) *DashboardUseCase {
	uc := &DashboardUseCase{
		live:     live,
		fallback: fallback,
		log:      log,
		now:      time.Now,
	}
	if live == nil {
		uc.degraded.Store(true)
	}
	return uc
}

// WithClock overrides the time source. Tests use this to pin the default
// window.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// UsingFallback reports whether results are being served from the synthetic
// dataset.
func (uc *DashboardUseCase) UsingFallback() bool {
	return uc.degraded.Load()
}

// query runs fn against the active source. A live-store failure flips the
// façade to the fallback for the rest of the process lifetime; a canceled
// context serves the fallback for this call only, since cancellation says
// nothing about store health.
func (uc *DashboardUseCase) query(ctx context.Context, op string, fn func(ds ports.DataSource) error) {
	if !uc.degraded.Load() {
		err := fn(uc.live)
		if err == nil {
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			uc.log.Warn("store query interrupted, serving synthetic data for this call",
				"op", op, "error", err)
		} else {
			uc.degraded.Store(true)
			uc.log.Warn("store unavailable, switching to synthetic dataset",
				"op", op, "error", err)
		}
	}

	if err := fn(uc.fallback); err != nil {
		// The synthetic source does not fail; zero values stand if it ever does.
		uc.log.Error("fallback query failed", "op", op, "error", err)
	}
}

func (uc *DashboardUseCase) Metrics(ctx context.Context, in WindowInput) domain.DashboardMetrics {
	w := domain.ResolveWindow(in.StartDate, in.EndDate, uc.now())

	var m domain.DashboardMetrics
	uc.query(ctx, "metrics", func(ds ports.DataSource) error {
		var err error
		if m.TotalStreamlit, err = ds.CountInteractions(ctx, w, domain.BotStreamlit); err != nil {
			return err
		}
		if m.TotalSlack, err = ds.CountInteractions(ctx, w, domain.BotSlack); err != nil {
			return err
		}
		if m.UniqueStreamlit, err = ds.CountUniqueUsers(ctx, w, domain.BotStreamlit); err != nil {
			return err
		}
		if m.UniqueSlack, err = ds.CountUniqueUsers(ctx, w, domain.BotSlack); err != nil {
			return err
		}
		if m.AvgStreamlitTime, err = ds.AverageResponseTime(ctx, w, domain.BotStreamlit); err != nil {
			return err
		}
		if m.AvgSlackTime, err = ds.AverageResponseTime(ctx, w, domain.BotSlack); err != nil {
			return err
		}
		return nil
	})
	return m
}

func (uc *DashboardUseCase) DailyActivity(ctx context.Context, in WindowInput) []domain.DailyActivity {
	w := domain.ResolveWindow(in.StartDate, in.EndDate, uc.now())

	var rows []domain.DailyActivity
	uc.query(ctx, "daily_activity", func(ds ports.DataSource) error {
		var err error
		rows, err = ds.DailyActivity(ctx, w)
		return err
	})
	if rows == nil {
		rows = []domain.DailyActivity{}
	}
	return rows
}

func (uc *DashboardUseCase) TopQueries(ctx context.Context, in TopQueriesInput) []domain.QueryCount {
	w := domain.ResolveWindow(in.StartDate, in.EndDate, uc.now())
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultTopQueriesLimit
	}

	var rows []domain.QueryCount
	uc.query(ctx, "top_queries", func(ds ports.DataSource) error {
		var err error
		rows, err = ds.TopQueries(ctx, w, limit)
		return err
	})
	if rows == nil {
		rows = []domain.QueryCount{}
	}
	return rows
}

func (uc *DashboardUseCase) RecentInteractions(ctx context.Context, in ListInteractionsInput) []domain.Interaction {
	w := domain.ResolveWindow(in.StartDate, in.EndDate, uc.now())
	filter := domain.ParseBotFilter(in.BotType)
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultInteractionsLimit
	}

	var rows []domain.Interaction
	uc.query(ctx, "interactions", func(ds ports.DataSource) error {
		var err error
		rows, err = ds.RecentInteractions(ctx, w, filter, limit)
		return err
	})
	if rows == nil {
		rows = []domain.Interaction{}
	}
	return rows
}

// ResponseTimes returns raw latency samples for one bot. The bot type is the
// only required parameter on the whole read surface.
func (uc *DashboardUseCase) ResponseTimes(ctx context.Context, in ResponseTimesInput) ([]int64, error) {
	botType := domain.ParseBotFilter(in.BotType)
	if botType == "" {
		return nil, ErrBotTypeRequired
	}
	w := domain.ResolveWindow(in.StartDate, in.EndDate, uc.now())

	var samples []int64
	uc.query(ctx, "response_times", func(ds ports.DataSource) error {
		var err error
		samples, err = ds.ResponseTimeSamples(ctx, w, botType)
		return err
	})
	if samples == nil {
		samples = []int64{}
	}
	return samples, nil
}

func (uc *DashboardUseCase) BotStatusReport(ctx context.Context, botType string) domain.BotStatusReport {
	botType = domain.ParseBotFilter(botType)

	var status *domain.BotStatus
	uc.query(ctx, "status", func(ds ports.DataSource) error {
		var err error
		status, err = ds.BotStatus(ctx, botType)
		return err
	})

	report := domain.BotStatusReport{}
	if status != nil {
		report.BotStatus = *status
	} else {
		report.BotType = botType
	}
	report.Liveness, report.Color = domain.ClassifyLiveness(report.LastHeartbeat, uc.now())
	return report
}
