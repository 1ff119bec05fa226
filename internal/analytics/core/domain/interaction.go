package domain

import "time"

const (
	BotStreamlit = "streamlit"
	BotSlack     = "slack"
)

// Interaction is one recorded query/response exchange from a bot front-end.
// ResponseTimeMs == 0 means the latency was not measured.
type Interaction struct {
	Timestamp      time.Time
	UserID         string
	BotType        string
	Query          string
	Response       string
	ResponseTimeMs int64
}

// BotStatus is the mutable per-bot liveness row, one per bot type.
type BotStatus struct {
	BotType        string
	LastHeartbeat  *time.Time
	ReportedStatus string
}

// BotStatusReport is a BotStatus with the liveness recomputed from
// LastHeartbeat at read time.
type BotStatusReport struct {
	BotStatus
	Liveness Liveness
	Color    string
}

type DailyActivity struct {
	Date    string // YYYY-MM-DD
	BotType string
	Count   int64
}

type QueryCount struct {
	Query string
	Count int64
}

// DashboardMetrics is the headline figure set for the dashboard.
type DashboardMetrics struct {
	TotalStreamlit   int64
	TotalSlack       int64
	UniqueStreamlit  int64
	UniqueSlack      int64
	AvgStreamlitTime float64
	AvgSlackTime     float64
}
