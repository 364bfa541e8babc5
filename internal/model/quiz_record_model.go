package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizRecord keeps the generated question set so weak-spot analysis can be
// rerun against the same quiz later.
type QuizRecord struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Difficulty string         `gorm:"type:varchar(32);not null"`
	Questions  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (QuizRecord) TableName() string {
	return "quiz_records"
}
