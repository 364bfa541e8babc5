package dto

import "github.com/google/uuid"

type ChatRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Message   string    `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string       `json:"response"`
	Sources  []ChatSource `json:"sources"`
}

type ChatSource struct {
	Source string `json:"source"`
	Page   int    `json:"page,omitempty"`
	Pages  int    `json:"total_pages,omitempty"`
}
