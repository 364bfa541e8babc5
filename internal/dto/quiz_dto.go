package dto

import (
	"ai-studybuddy-be/internal/entity"

	"github.com/google/uuid"
)

type GenerateQuizRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	// Topic narrows the quiz to one subject; empty or "general" quizzes the
	// whole session.
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions" validate:"omitempty,min=1"`
}

type GenerateQuizResponse struct {
	QuizId    uuid.UUID             `json:"quiz_id"`
	Questions []entity.QuizQuestion `json:"questions"`
	Warning   string                `json:"warning,omitempty"`
}

type AnalyzeQuizRequest struct {
	SessionId uuid.UUID           `json:"session_id"`
	Results   []entity.QuizResult `json:"results" validate:"required,min=1"`
}

type AnalyzeQuizResponse struct {
	Score          int      `json:"score"`
	Total          int      `json:"total"`
	Percentage     float64  `json:"percentage"`
	WeakTopics     []string `json:"weak_topics"`
	Recommendation string   `json:"recommendation"`
}

type SummaryRequest struct {
	SessionId    uuid.UUID `json:"session_id" validate:"required"`
	SummaryType  string    `json:"summary_type" validate:"omitempty,oneof=brief detailed"`
	SourceFilter string    `json:"source_filter"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
