package dto

import "github.com/google/uuid"

type GenerateSlidesRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Topic     string    `json:"topic"`
	NumSlides int       `json:"num_slides" validate:"omitempty,min=1,max=20"`
}
