package service

import (
	"context"
	"fmt"
	"strings"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/pkg/imagegen"
	"ai-studybuddy-be/pkg/llm"
)

type IImageService interface {
	// Generate renders an educational illustration from a bare topic and an
	// optional style hint.
	Generate(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)

	// GenerateFromContext crafts the image prompt from the session's
	// material first, then renders it. Fails with 400 when the session has
	// nothing relevant.
	GenerateFromContext(ctx context.Context, req *dto.GenerateImageFromContextRequest) (*dto.GenerateImageResponse, error)
}

type imageService struct {
	retrievalService IRetrievalService
	llmProvider      llm.LLMProvider
	imageProvider    imagegen.ImageProvider
}

func NewImageService(
	retrievalService IRetrievalService,
	llmProvider llm.LLMProvider,
	imageProvider imagegen.ImageProvider,
) IImageService {
	return &imageService{
		retrievalService: retrievalService,
		llmProvider:      llmProvider,
		imageProvider:    imageProvider,
	}
}

func (s *imageService) note() string {
	return fmt.Sprintf("Image generated with %s", s.imageProvider.Model())
}

func (s *imageService) Generate(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	style := req.Style
	if style == "" {
		style = constant.ImageDefaultStyle
	}
	prompt := fmt.Sprintf(constant.ImagePromptTemplate, req.Topic, style)

	image, err := s.imageProvider.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateImageResponse{
		ImageData:     image,
		OriginalTopic: req.Topic,
		PromptUsed:    prompt,
		Note:          s.note(),
	}, nil
}

func (s *imageService) GenerateFromContext(ctx context.Context, req *dto.GenerateImageFromContextRequest) (*dto.GenerateImageResponse, error) {
	concept := req.Concept
	if concept == "" {
		concept = "the main concept of the study material"
	}

	context_, _, err := s.retrievalService.Retrieve(ctx, req.SessionId, concept, 5, "")
	if err != nil {
		return nil, err
	}
	if context_ == "" {
		return nil, serverutils.BadRequest("No relevant content found in your documents about this concept.")
	}

	if len(context_) > 1500 {
		context_ = context_[:1500]
	}

	craftPrompt := fmt.Sprintf(constant.ImageFromContextPromptTemplate, concept, context_)
	imagePrompt, err := s.llmProvider.Generate(ctx, craftPrompt, llm.WithTemperature(0.4))
	if err != nil {
		return nil, err
	}
	imagePrompt = strings.TrimSpace(imagePrompt)

	image, err := s.imageProvider.Generate(ctx, imagePrompt)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateImageResponse{
		ImageData:   image,
		Concept:     concept,
		PromptUsed:  imagePrompt,
		ContextUsed: context_,
		Note:        s.note(),
	}, nil
}
