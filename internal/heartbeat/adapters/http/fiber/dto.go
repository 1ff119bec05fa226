package fiber

// HeartbeatRequest is the liveness signal a bot front-end posts.
// @Description Heartbeat DTO
type HeartbeatRequest struct {
	BotType string `json:"bot_type" example:"streamlit"`
}

type HeartbeatResponse struct {
	Status string `json:"status" example:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"unknown_bot_type"`
	Message string `json:"message" example:"unknown bot type"`
}
