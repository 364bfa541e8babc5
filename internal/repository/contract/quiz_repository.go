package contract

import (
	"context"

	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/specification"
)

type QuizRepository interface {
	Create(ctx context.Context, record *entity.QuizRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuizRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizRecord, error)
}
