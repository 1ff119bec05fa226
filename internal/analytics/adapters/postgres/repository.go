package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ralphbot-analytics/internal/analytics/core/domain"
	"ralphbot-analytics/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// InteractionRepository is the live-store DataSource over the interactions
// and bot_status tables.
type InteractionRepository struct {
	db DB
}

func NewInteractionRepository(db DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

var _ ports.DataSource = (*InteractionRepository)(nil)

// windowWhere builds the shared range + optional bot_type predicate. Both
// bounds are inclusive.
func windowWhere(w domain.Window, botType string) (string, []any) {
	where := "timestamp BETWEEN $1 AND $2"
	args := []any{w.Start, w.End}
	if botType != "" {
		where += fmt.Sprintf(" AND bot_type = $%d", len(args)+1)
		args = append(args, botType)
	}
	return where, args
}

func (r *InteractionRepository) queryOne(ctx context.Context, query string, args []any, dest ...any) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *InteractionRepository) CountInteractions(ctx context.Context, w domain.Window, botType string) (int64, error) {
	where, args := windowWhere(w, botType)
	query := "SELECT COUNT(*) FROM interactions WHERE " + where

	var count int64
	if err := r.queryOne(ctx, query, args, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InteractionRepository) CountUniqueUsers(ctx context.Context, w domain.Window, botType string) (int64, error) {
	where, args := windowWhere(w, botType)
	query := "SELECT COUNT(DISTINCT user_id) FROM interactions WHERE " + where

	var count int64
	if err := r.queryOne(ctx, query, args, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InteractionRepository) AverageResponseTime(ctx context.Context, w domain.Window, botType string) (float64, error) {
	where, args := windowWhere(w, botType)
	// Zero means "not measured" and is excluded from the mean.
	query := `SELECT COALESCE(AVG(response_time_ms), 0) FROM interactions WHERE ` + where +
		` AND response_time_ms > 0`

	var avg float64
	if err := r.queryOne(ctx, query, args, &avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *InteractionRepository) DailyActivity(ctx context.Context, w domain.Window) ([]domain.DailyActivity, error) {
	where, args := windowWhere(w, "")
	query := `
SELECT
    to_char(timestamp, 'YYYY-MM-DD') AS day,
    bot_type,
    COUNT(*) AS total
FROM interactions
WHERE ` + where + `
GROUP BY day, bot_type
ORDER BY day, bot_type`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DailyActivity
	for rows.Next() {
		var row domain.DailyActivity
		if err := rows.Scan(&row.Date, &row.BotType, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InteractionRepository) TopQueries(ctx context.Context, w domain.Window, limit int) ([]domain.QueryCount, error) {
	where, args := windowWhere(w, "")
	// Secondary ordering by query text keeps ties deterministic.
	query := fmt.Sprintf(`
SELECT query, COUNT(*) AS total
FROM interactions
WHERE %s
GROUP BY query
ORDER BY total DESC, query ASC
LIMIT $%d`, where, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.QueryCount
	for rows.Next() {
		var row domain.QueryCount
		if err := rows.Scan(&row.Query, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InteractionRepository) RecentInteractions(ctx context.Context, w domain.Window, botType string, limit int) ([]domain.Interaction, error) {
	where, args := windowWhere(w, botType)
	query := fmt.Sprintf(`
SELECT timestamp, user_id, bot_type, query, response, COALESCE(response_time_ms, 0)
FROM interactions
WHERE %s
ORDER BY timestamp DESC
LIMIT $%d`, where, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Interaction
	for rows.Next() {
		var row domain.Interaction
		if err := rows.Scan(&row.Timestamp, &row.UserID, &row.BotType, &row.Query, &row.Response, &row.ResponseTimeMs); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InteractionRepository) ResponseTimeSamples(ctx context.Context, w domain.Window, botType string) ([]int64, error) {
	where, args := windowWhere(w, botType)
	query := "SELECT response_time_ms FROM interactions WHERE " + where +
		" AND response_time_ms > 0"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var ms int64
		if err := rows.Scan(&ms); err != nil {
			return nil, err
		}
		out = append(out, ms)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InteractionRepository) BotStatus(ctx context.Context, botType string) (*domain.BotStatus, error) {
	query := "SELECT bot_type, last_heartbeat, status FROM bot_status WHERE bot_type = $1"

	rows, err := r.db.QueryContext(ctx, query, botType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var status domain.BotStatus
	var hb sql.NullTime
	if err := rows.Scan(&status.BotType, &hb, &status.ReportedStatus); err != nil {
		return nil, err
	}
	if hb.Valid {
		t := hb.Time.UTC()
		status.LastHeartbeat = &t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &status, nil
}
