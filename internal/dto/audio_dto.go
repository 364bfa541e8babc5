package dto

import "github.com/google/uuid"

// AudioInteractRequest accepts either a recorded clip or typed text.
type AudioInteractRequest struct {
	SessionId     uuid.UUID
	Audio         []byte
	AudioFilename string
	Text          string
	Language      string
}

type AudioInteractResponse struct {
	AudioBase64 string       `json:"audio_base64,omitempty"`
	UserText    string       `json:"user_text"`
	AiText      string       `json:"ai_text"`
	Sources     []ChatSource `json:"sources"`
}
