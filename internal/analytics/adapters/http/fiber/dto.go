package fiber

// InteractionResponse mirrors one stored exchange, without storage
// identifiers.
type InteractionResponse struct {
	Timestamp      string `json:"timestamp"`
	UserID         string `json:"user_id"`
	BotType        string `json:"bot_type"`
	Query          string `json:"query"`
	Response       string `json:"response"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

type MetricsResponse struct {
	TotalStreamlit   int64   `json:"total_streamlit"`
	TotalSlack       int64   `json:"total_slack"`
	UniqueStreamlit  int64   `json:"unique_streamlit"`
	UniqueSlack      int64   `json:"unique_slack"`
	AvgStreamlitTime float64 `json:"avg_streamlit_time"`
	AvgSlackTime     float64 `json:"avg_slack_time"`
}

type DailyActivityResponse struct {
	Date    string `json:"date"`
	BotType string `json:"bot_type"`
	Count   int64  `json:"count"`
}

type TopQueryResponse struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type BotStatusResponse struct {
	BotType       string  `json:"bot_type"`
	LastHeartbeat *string `json:"last_heartbeat"`
	Status        string  `json:"status"`
	Color         string  `json:"color"`
}

type StatusResponse struct {
	Streamlit     BotStatusResponse `json:"streamlit"`
	Slack         BotStatusResponse `json:"slack"`
	UsingFallback bool              `json:"using_fallback"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"bot_type_required"`
	Message string `json:"message" example:"bot_type is required"`
}
