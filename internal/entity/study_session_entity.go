package entity

import (
	"time"

	"github.com/google/uuid"
)

type StudySession struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
