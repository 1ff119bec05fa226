package fiber

import (
	"context"
	"errors"
	"net/http"

	"ralphbot-analytics/internal/heartbeat/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordHeartbeatUseCase interface {
	Execute(ctx context.Context, botType string) error
}

type HeartbeatHandler struct {
	uc RecordHeartbeatUseCase
}

func NewHeartbeatHandler(uc RecordHeartbeatUseCase) *HeartbeatHandler {
	return &HeartbeatHandler{uc: uc}
}

// RecordHeartbeat godoc
// @Summary Record a bot heartbeat
// @Description Upserts the bot's last_heartbeat; empty bot_type means streamlit
// @Tags Status
// @Accept json
// @Produce json
// @Param request body HeartbeatRequest true "Heartbeat payload"
// @Success 200 {object} HeartbeatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /heartbeat [post]
func (h *HeartbeatHandler) RecordHeartbeat(c *fiber.Ctx) error {
	var req HeartbeatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if err := h.uc.Execute(c.UserContext(), req.BotType); err != nil {
		if errors.Is(err, usecase.ErrUnknownBotType) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "unknown_bot_type",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(HeartbeatResponse{Status: "success"})
}
