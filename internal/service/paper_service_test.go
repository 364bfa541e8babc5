package service

import (
	"context"
	"errors"
	"testing"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRetrievalService struct {
	context string
	queries []string
}

func (s *stubRetrievalService) Retrieve(ctx context.Context, sessionId uuid.UUID, query string, k int, sourceFilter string) (string, []dto.ChatSource, error) {
	s.queries = append(s.queries, query)
	return s.context, nil, nil
}

func (s *stubRetrievalService) QuizContext(ctx context.Context, sessionId uuid.UUID, topic string) (string, int, error) {
	s.queries = append(s.queries, topic)
	return s.context, 10, nil
}

// scriptedLLM replays canned responses and records every prompt it saw.
type scriptedLLM struct {
	prompts   []string
	responses []string
}

func (l *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", errors.New("not scripted")
}

func (l *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	l.prompts = append(l.prompts, prompt)
	if len(l.responses) == 0 {
		return "", errors.New("no scripted response left")
	}
	resp := l.responses[0]
	l.responses = l.responses[1:]
	return resp, nil
}

const paperPatternJSON = `{
	"exam_name": "Biology Midterm",
	"duration_mins": 90,
	"total_marks": 50,
	"sections": [
		{"title": "Section A", "instructions": "Short answers", "marks": 50, "count": 2}
	]
}`

func TestPaperGenerateFromReference(t *testing.T) {
	retrieval := &stubRetrievalService{context: "mitochondria are the powerhouse of the cell"}
	llmStub := &scriptedLLM{responses: []string{paperPatternJSON, `["Define osmosis.", "Explain diffusion."]`}}
	svc := NewPaperService(retrieval, llmStub)

	referenceText := "Q1. Define photosynthesis. (5 marks)\nQ2. Label the cell diagram. (10 marks)"
	res, err := svc.Generate(context.Background(), &dto.GeneratePaperRequest{
		SessionId: uuid.New(),
		Reference: &dto.UploadedFile{
			Filename: "midterm_2024.txt",
			Content:  []byte(referenceText),
		},
	})
	require.NoError(t, err)

	require.Len(t, llmStub.prompts, 2)
	assert.Contains(t, llmStub.prompts[0], referenceText,
		"the pattern must be analyzed from the uploaded paper")
	assert.NotContains(t, llmStub.prompts[0], retrieval.context,
		"session material must not leak into the structure analysis")
	assert.Contains(t, llmStub.prompts[1], retrieval.context,
		"questions still come from the session material")

	assert.Equal(t, "Biology Midterm", res.Paper.ExamName)
	require.Len(t, res.Paper.Sections, 1)
	assert.Equal(t, []string{"Define osmosis.", "Explain diffusion."}, res.Paper.Sections[0].Questions)

	require.Len(t, res.OriginalPattern.Sections, 1)
	assert.Equal(t, 2, res.OriginalPattern.Sections[0].Count)
}

func TestPaperGenerateWithoutReferenceUsesSessionMaterial(t *testing.T) {
	retrieval := &stubRetrievalService{context: "the krebs cycle produces ATP"}
	llmStub := &scriptedLLM{responses: []string{paperPatternJSON, `["Describe the krebs cycle."]`}}
	svc := NewPaperService(retrieval, llmStub)

	res, err := svc.Generate(context.Background(), &dto.GeneratePaperRequest{
		SessionId: uuid.New(),
		Subject:   "biology",
	})
	require.NoError(t, err)

	require.Len(t, llmStub.prompts, 2)
	assert.Contains(t, llmStub.prompts[0], retrieval.context,
		"without a reference the structure is designed from the session material")
	assert.Equal(t, "Biology Midterm", res.Paper.ExamName)
}

func TestPaperGenerateRejectsUnreadableReference(t *testing.T) {
	retrieval := &stubRetrievalService{context: "some material"}
	llmStub := &scriptedLLM{}
	svc := NewPaperService(retrieval, llmStub)

	_, err := svc.Generate(context.Background(), &dto.GeneratePaperRequest{
		SessionId: uuid.New(),
		Reference: &dto.UploadedFile{
			Filename: "midterm.exe",
			Content:  []byte{0x4d, 0x5a},
		},
	})
	require.Error(t, err)

	var apiErr *serverutils.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Code)
	assert.Empty(t, llmStub.prompts, "no LLM call for an unreadable reference")
}

func TestPaperGenerateEmptySession(t *testing.T) {
	retrieval := &stubRetrievalService{context: ""}
	svc := NewPaperService(retrieval, &scriptedLLM{})

	_, err := svc.Generate(context.Background(), &dto.GeneratePaperRequest{SessionId: uuid.New()})
	require.Error(t, err)

	var apiErr *serverutils.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Code)
}
