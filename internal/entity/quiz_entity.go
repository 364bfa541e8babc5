package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuizDifficulty string

const (
	QuizDifficultyEasy   QuizDifficulty = "easy"
	QuizDifficultyMedium QuizDifficulty = "medium"
	QuizDifficultyHard   QuizDifficulty = "hard"
)

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Topic         string   `json:"topic,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

type QuizRecord struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	Difficulty QuizDifficulty
	Questions  []QuizQuestion
	CreatedAt  time.Time
}

// QuizResult is one answered question submitted for weak-spot analysis.
type QuizResult struct {
	Question      string `json:"question"`
	Topic         string `json:"topic,omitempty"`
	SelectedValue string `json:"selected"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type WeakSpotAnalysis struct {
	Score          int
	Total          int
	Percentage     float64
	WeakTopics     []string
	Recommendation string
}
