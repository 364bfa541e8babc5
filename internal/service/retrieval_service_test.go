package service

import (
	"context"
	"strings"
	"testing"

	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingEmbedder struct {
	queries []string
}

func (e *capturingEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	e.queries = append(e.queries, text)
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2}},
	}, nil
}

func newRetrievalServiceWithChunks(embedder *capturingEmbedder, contents ...string) IRetrievalService {
	var retrieved []*entity.RetrievedChunk
	for _, c := range contents {
		retrieved = append(retrieved, &entity.RetrievedChunk{
			Chunk: entity.DocumentChunk{Source: "notes.txt", Content: c},
		})
	}
	factory := &stubUowFactory{uow: &stubUow{chunks: &stubChunkRepo{retrieved: retrieved}}}
	return NewRetrievalService(factory, embedder)
}

func TestQuizContextTopicShapesQuery(t *testing.T) {
	tests := []struct {
		name      string
		topic     string
		wantQuery string
	}{
		{
			name:      "specific topic",
			topic:     "photosynthesis",
			wantQuery: "Key concepts and important information about photosynthesis",
		},
		{
			name:      "empty topic pulls broad context",
			topic:     "",
			wantQuery: "Main concepts, key facts, and important information",
		},
		{
			name:      "general topic pulls broad context",
			topic:     "General",
			wantQuery: "Main concepts, key facts, and important information",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedder := &capturingEmbedder{}
			svc := newRetrievalServiceWithChunks(embedder, "light reactions produce ATP and NADPH")

			content, _, err := svc.QuizContext(context.Background(), uuid.New(), tt.topic)
			require.NoError(t, err)
			assert.Contains(t, content, "light reactions")

			require.Len(t, embedder.queries, 1)
			assert.Equal(t, tt.wantQuery, embedder.queries[0])
		})
	}
}

func TestQuizContextQuestionBudget(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"thin material floors at five", 40, 5},
		{"one question per forty words", 400, 10},
		{"rich material caps at fifty", 4000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			svc := newRetrievalServiceWithChunks(&capturingEmbedder{}, content)

			_, maxQuestions, err := svc.QuizContext(context.Background(), uuid.New(), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, maxQuestions)
		})
	}
}

func TestQuizContextEmptySession(t *testing.T) {
	svc := newRetrievalServiceWithChunks(&capturingEmbedder{})

	content, maxQuestions, err := svc.QuizContext(context.Background(), uuid.New(), "anything")
	require.NoError(t, err)
	assert.Empty(t, content)
	assert.Zero(t, maxQuestions)
}
