package dto

import "github.com/google/uuid"

type GenerateImageRequest struct {
	Topic string `json:"topic" validate:"required"`
	// Style defaults to an educational diagram look when empty.
	Style string `json:"style"`
}

type GenerateImageFromContextRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Concept   string    `json:"concept"`
}

type GenerateImageResponse struct {
	ImageData     string `json:"image_data"`
	OriginalTopic string `json:"original_topic,omitempty"`
	Concept       string `json:"concept,omitempty"`
	PromptUsed    string `json:"prompt_used"`
	// ContextUsed echoes the retrieved material the prompt was built from.
	ContextUsed string `json:"context_used,omitempty"`
	Note        string `json:"note,omitempty"`
}
