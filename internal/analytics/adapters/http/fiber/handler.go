package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ralphbot-analytics/internal/analytics/core/domain"
	"ralphbot-analytics/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardUseCase interface {
	Metrics(ctx context.Context, in usecase.WindowInput) domain.DashboardMetrics
	DailyActivity(ctx context.Context, in usecase.WindowInput) []domain.DailyActivity
	TopQueries(ctx context.Context, in usecase.TopQueriesInput) []domain.QueryCount
	RecentInteractions(ctx context.Context, in usecase.ListInteractionsInput) []domain.Interaction
	ResponseTimes(ctx context.Context, in usecase.ResponseTimesInput) ([]int64, error)
	BotStatusReport(ctx context.Context, botType string) domain.BotStatusReport
	UsingFallback() bool
}

type DashboardHandler struct {
	uc DashboardUseCase
}

func NewDashboardHandler(uc DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStatus godoc
// @Summary Bot liveness status
// @Description Returns both bots' last heartbeat with recomputed liveness
// @Tags Status
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /status [get]
func (h *DashboardHandler) GetStatus(c *fiber.Ctx) error {
	streamlit := h.uc.BotStatusReport(c.UserContext(), domain.BotStreamlit)
	slack := h.uc.BotStatusReport(c.UserContext(), domain.BotSlack)

	return c.Status(http.StatusOK).JSON(StatusResponse{
		Streamlit:     toStatusResponse(streamlit),
		Slack:         toStatusResponse(slack),
		UsingFallback: h.uc.UsingFallback(),
	})
}

// GetInteractions godoc
// @Summary List recent interactions
// @Description Interactions within the window, newest first
// @Tags Analytics
// @Produce json
// @Param start_date query string false "ISO-8601 start (default now-7d)"
// @Param end_date query string false "ISO-8601 end (default now)"
// @Param bot_type query string false "streamlit | slack | both"
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {array} InteractionResponse
// @Router /interactions [get]
func (h *DashboardHandler) GetInteractions(c *fiber.Ctx) error {
	rows := h.uc.RecentInteractions(c.UserContext(), usecase.ListInteractionsInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
		BotType:   c.Query("bot_type", ""),
		Limit:     c.QueryInt("limit", 0),
	})

	resp := make([]InteractionResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, InteractionResponse{
			Timestamp:      r.Timestamp.UTC().Format(time.RFC3339),
			UserID:         r.UserID,
			BotType:        r.BotType,
			Query:          r.Query,
			Response:       r.Response,
			ResponseTimeMs: r.ResponseTimeMs,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetMetrics godoc
// @Summary Headline dashboard metrics
// @Description Totals, unique users and average latency per bot type
// @Tags Analytics
// @Produce json
// @Param start_date query string false "ISO-8601 start (default now-7d)"
// @Param end_date query string false "ISO-8601 end (default now)"
// @Success 200 {object} MetricsResponse
// @Router /metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	m := h.uc.Metrics(c.UserContext(), usecase.WindowInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
	})

	return c.Status(http.StatusOK).JSON(MetricsResponse{
		TotalStreamlit:   m.TotalStreamlit,
		TotalSlack:       m.TotalSlack,
		UniqueStreamlit:  m.UniqueStreamlit,
		UniqueSlack:      m.UniqueSlack,
		AvgStreamlitTime: m.AvgStreamlitTime,
		AvgSlackTime:     m.AvgSlackTime,
	})
}

// GetDailyActivity godoc
// @Summary Daily interaction counts
// @Description One row per calendar date and bot type, ascending by date
// @Tags Analytics
// @Produce json
// @Param start_date query string false "ISO-8601 start (default now-7d)"
// @Param end_date query string false "ISO-8601 end (default now)"
// @Success 200 {array} DailyActivityResponse
// @Router /daily_activity [get]
func (h *DashboardHandler) GetDailyActivity(c *fiber.Ctx) error {
	rows := h.uc.DailyActivity(c.UserContext(), usecase.WindowInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
	})

	resp := make([]DailyActivityResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, DailyActivityResponse{Date: r.Date, BotType: r.BotType, Count: r.Count})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetTopQueries godoc
// @Summary Most frequent queries
// @Description Query strings ranked by occurrence, highest first
// @Tags Analytics
// @Produce json
// @Param start_date query string false "ISO-8601 start (default now-7d)"
// @Param end_date query string false "ISO-8601 end (default now)"
// @Param limit query int false "Max rows (default 10)"
// @Success 200 {array} TopQueryResponse
// @Router /top_queries [get]
func (h *DashboardHandler) GetTopQueries(c *fiber.Ctx) error {
	rows := h.uc.TopQueries(c.UserContext(), usecase.TopQueriesInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
		Limit:     c.QueryInt("limit", 0),
	})

	resp := make([]TopQueryResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, TopQueryResponse{Query: r.Query, Count: r.Count})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetResponseTimes godoc
// @Summary Raw latency samples
// @Description Measured response times for one bot within the window
// @Tags Analytics
// @Produce json
// @Param start_date query string false "ISO-8601 start (default now-7d)"
// @Param end_date query string false "ISO-8601 end (default now)"
// @Param bot_type query string true "streamlit | slack"
// @Success 200 {array} int
// @Failure 400 {object} ErrorResponse
// @Router /response_times [get]
func (h *DashboardHandler) GetResponseTimes(c *fiber.Ctx) error {
	samples, err := h.uc.ResponseTimes(c.UserContext(), usecase.ResponseTimesInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
		BotType:   c.Query("bot_type", ""),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrBotTypeRequired) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "bot_type_required",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(samples)
}

func toStatusResponse(r domain.BotStatusReport) BotStatusResponse {
	resp := BotStatusResponse{
		BotType: r.BotType,
		Status:  string(r.Liveness),
		Color:   r.Color,
	}
	if r.LastHeartbeat != nil {
		hb := r.LastHeartbeat.UTC().Format(time.RFC3339)
		resp.LastHeartbeat = &hb
	}
	return resp
}
