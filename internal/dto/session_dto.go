package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteSessionResponse struct {
	SessionId     uuid.UUID `json:"session_id"`
	DeletedChunks int64     `json:"deleted_chunks"`
}
