package service

import (
	"context"
	"errors"
	"testing"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImageProvider struct {
	prompts []string
}

func (p *stubImageProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return "aW1hZ2U=", nil
}

func (p *stubImageProvider) Model() string { return "dall-e-3" }

func TestImageGenerateDefaultStyle(t *testing.T) {
	provider := &stubImageProvider{}
	svc := NewImageService(&stubRetrievalService{}, &scriptedLLM{}, provider)

	res, err := svc.Generate(context.Background(), &dto.GenerateImageRequest{Topic: "mitosis"})
	require.NoError(t, err)

	assert.Equal(t, "aW1hZ2U=", res.ImageData)
	assert.Equal(t, "mitosis", res.OriginalTopic)
	assert.Contains(t, res.PromptUsed, "educational diagram style")
	assert.Equal(t, "Image generated with dall-e-3", res.Note)
}

func TestImageGenerateCustomStyle(t *testing.T) {
	provider := &stubImageProvider{}
	svc := NewImageService(&stubRetrievalService{}, &scriptedLLM{}, provider)

	res, err := svc.Generate(context.Background(), &dto.GenerateImageRequest{
		Topic: "mitosis",
		Style: "flowchart",
	})
	require.NoError(t, err)

	assert.Contains(t, res.PromptUsed, "flowchart style")
	require.Len(t, provider.prompts, 1)
	assert.Equal(t, res.PromptUsed, provider.prompts[0])
}

func TestImageGenerateFromContext(t *testing.T) {
	retrieval := &stubRetrievalService{context: "mitosis has four phases"}
	llmStub := &scriptedLLM{responses: []string{"  a labeled diagram of the four phases of mitosis  "}}
	provider := &stubImageProvider{}
	svc := NewImageService(retrieval, llmStub, provider)

	res, err := svc.GenerateFromContext(context.Background(), &dto.GenerateImageFromContextRequest{
		SessionId: uuid.New(),
		Concept:   "mitosis",
	})
	require.NoError(t, err)

	assert.Equal(t, "mitosis", res.Concept)
	assert.Equal(t, "a labeled diagram of the four phases of mitosis", res.PromptUsed)
	assert.Equal(t, "mitosis has four phases", res.ContextUsed)
	assert.Equal(t, "aW1hZ2U=", res.ImageData)
	assert.Equal(t, "Image generated with dall-e-3", res.Note)
}

func TestImageGenerateFromContextEmptySession(t *testing.T) {
	svc := NewImageService(&stubRetrievalService{}, &scriptedLLM{}, &stubImageProvider{})

	_, err := svc.GenerateFromContext(context.Background(), &dto.GenerateImageFromContextRequest{
		SessionId: uuid.New(),
		Concept:   "mitosis",
	})
	require.Error(t, err)

	var apiErr *serverutils.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Code)
}
