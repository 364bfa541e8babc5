package service

import (
	"testing"

	"ai-studybuddy-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestScoreResults(t *testing.T) {
	tests := []struct {
		name           string
		results        []entity.QuizResult
		wantScore      int
		wantTotal      int
		wantPercentage float64
		wantWeakTopics []string
	}{
		{
			name:      "empty results",
			results:   nil,
			wantScore: 0, wantTotal: 0, wantPercentage: 0,
			wantWeakTopics: nil,
		},
		{
			name: "all correct",
			results: []entity.QuizResult{
				{Topic: "Biology", SelectedValue: "A", CorrectAnswer: "A"},
				{Topic: "Chemistry", SelectedValue: "B", CorrectAnswer: "B"},
			},
			wantScore: 2, wantTotal: 2, wantPercentage: 100,
			wantWeakTopics: nil,
		},
		{
			name: "all wrong",
			results: []entity.QuizResult{
				{Topic: "Biology", SelectedValue: "A", CorrectAnswer: "B"},
				{Topic: "Chemistry", SelectedValue: "C", CorrectAnswer: "D"},
			},
			wantScore: 0, wantTotal: 2, wantPercentage: 0,
			wantWeakTopics: []string{"Biology", "Chemistry"},
		},
		{
			name: "weak topics deduplicated",
			results: []entity.QuizResult{
				{Topic: "Physics", SelectedValue: "A", CorrectAnswer: "B"},
				{Topic: "Physics", SelectedValue: "C", CorrectAnswer: "D"},
				{Topic: "Physics", SelectedValue: "X", CorrectAnswer: "X"},
			},
			wantScore: 1, wantTotal: 3, wantPercentage: 100.0 / 3,
			wantWeakTopics: []string{"Physics"},
		},
		{
			name: "missing topic falls back to General",
			results: []entity.QuizResult{
				{SelectedValue: "A", CorrectAnswer: "B"},
			},
			wantScore: 0, wantTotal: 1, wantPercentage: 0,
			wantWeakTopics: []string{"General"},
		},
		{
			name: "is_correct flag honored even when values differ",
			results: []entity.QuizResult{
				{Topic: "Math", SelectedValue: "option a", CorrectAnswer: "Option A", IsCorrect: true},
			},
			wantScore: 1, wantTotal: 1, wantPercentage: 100,
			wantWeakTopics: nil,
		},
		{
			name: "empty selection never counts as correct",
			results: []entity.QuizResult{
				{Topic: "Math", SelectedValue: "", CorrectAnswer: ""},
			},
			wantScore: 0, wantTotal: 1, wantPercentage: 0,
			wantWeakTopics: []string{"Math"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := ScoreResults(tt.results)
			assert.Equal(t, tt.wantScore, analysis.Score)
			assert.Equal(t, tt.wantTotal, analysis.Total)
			assert.InDelta(t, tt.wantPercentage, analysis.Percentage, 0.001)
			assert.Equal(t, tt.wantWeakTopics, analysis.WeakTopics)
		})
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		raw  string
		want entity.QuizDifficulty
	}{
		{"easy", entity.QuizDifficultyEasy},
		{"medium", entity.QuizDifficultyMedium},
		{"hard", entity.QuizDifficultyHard},
		{"HARD", entity.QuizDifficultyHard},
		{"  easy  ", entity.QuizDifficultyEasy},
		{"", entity.QuizDifficultyMedium},
		{"extreme", entity.QuizDifficultyMedium},
		{"42", entity.QuizDifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDifficulty(tt.raw))
		})
	}
}
