package ports

import (
	"context"

	"ralphbot-analytics/internal/analytics/core/domain"
)

// DataSource is the query contract both the live store and the synthetic
// fallback satisfy. The botType filter is already normalized by the caller;
// empty string means no restriction. All operations are read-only.
type DataSource interface {
	CountInteractions(ctx context.Context, w domain.Window, botType string) (int64, error)
	CountUniqueUsers(ctx context.Context, w domain.Window, botType string) (int64, error)
	AverageResponseTime(ctx context.Context, w domain.Window, botType string) (float64, error)
	DailyActivity(ctx context.Context, w domain.Window) ([]domain.DailyActivity, error)
	TopQueries(ctx context.Context, w domain.Window, limit int) ([]domain.QueryCount, error)
	RecentInteractions(ctx context.Context, w domain.Window, botType string, limit int) ([]domain.Interaction, error)
	ResponseTimeSamples(ctx context.Context, w domain.Window, botType string) ([]int64, error)
	BotStatus(ctx context.Context, botType string) (*domain.BotStatus, error)
}
