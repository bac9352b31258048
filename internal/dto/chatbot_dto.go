package dto

// ChatTurn mirrors one prior exchange supplied by the client.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type SendChatRequest struct {
	Message   string     `json:"message" validate:"required,max=2000"`
	SessionId string     `json:"session_id,omitempty" validate:"omitempty,max=128"`
	History   []ChatTurn `json:"history,omitempty" validate:"omitempty,max=20,dive"`
}

type SendChatResponse struct {
	Reply     string `json:"reply"`
	Intent    string `json:"intent"`
	SessionId string `json:"session_id,omitempty"`
}
