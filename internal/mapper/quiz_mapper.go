package mapper

import (
	"encoding/json"

	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/model"

	"gorm.io/datatypes"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(r *model.QuizRecord) (*entity.QuizRecord, error) {
	if r == nil {
		return nil, nil
	}

	var questions []entity.QuizQuestion
	if len(r.Questions) > 0 {
		if err := json.Unmarshal(r.Questions, &questions); err != nil {
			return nil, err
		}
	}

	return &entity.QuizRecord{
		Id:         r.Id,
		SessionId:  r.SessionId,
		Difficulty: entity.QuizDifficulty(r.Difficulty),
		Questions:  questions,
		CreatedAt:  r.CreatedAt,
	}, nil
}

func (m *QuizMapper) ToModel(r *entity.QuizRecord) (*model.QuizRecord, error) {
	if r == nil {
		return nil, nil
	}

	raw, err := json.Marshal(r.Questions)
	if err != nil {
		return nil, err
	}

	return &model.QuizRecord{
		Id:         r.Id,
		SessionId:  r.SessionId,
		Difficulty: string(r.Difficulty),
		Questions:  datatypes.JSON(raw),
		CreatedAt:  r.CreatedAt,
	}, nil
}
