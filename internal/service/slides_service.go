package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/pkg/llm"
	"ai-studybuddy-be/pkg/ooxml"
	"ai-studybuddy-be/pkg/utils"
)

type ISlidesService interface {
	// Generate builds a PowerPoint deck from the session material and
	// returns its bytes plus a suggested filename.
	Generate(ctx context.Context, req *dto.GenerateSlidesRequest) ([]byte, string, error)
}

type slidesService struct {
	retrievalService IRetrievalService
	llmProvider      llm.LLMProvider
}

func NewSlidesService(
	retrievalService IRetrievalService,
	llmProvider llm.LLMProvider,
) ISlidesService {
	return &slidesService{
		retrievalService: retrievalService,
		llmProvider:      llmProvider,
	}
}

// slideContent mirrors the JSON shape the slides prompt requests.
type slideContent struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
	Notes  string   `json:"notes"`
}

func (s *slidesService) Generate(ctx context.Context, req *dto.GenerateSlidesRequest) ([]byte, string, error) {
	topic := req.Topic
	if topic == "" {
		topic = "the study material"
	}
	numSlides := req.NumSlides
	if numSlides <= 0 {
		numSlides = 5
	}

	query := fmt.Sprintf("Key concepts and important information about %s", topic)
	context_, _, err := s.retrievalService.Retrieve(ctx, req.SessionId, query, 20, "")
	if err != nil {
		return nil, "", err
	}
	if context_ == "" {
		return nil, "", serverutils.BadRequest("No study materials found in session.")
	}
	if len(context_) > 15000 {
		context_ = context_[:15000]
	}

	prompt := fmt.Sprintf(constant.SlidesPromptTemplate, numSlides, topic, context_)

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		return nil, "", err
	}

	var slides []slideContent
	if err := json.Unmarshal([]byte(utils.StripJSONFences(raw)), &slides); err != nil {
		return nil, "", serverutils.NewApiError(502, "Failed to generate slides. Please try again.")
	}
	if len(slides) == 0 {
		return nil, "", serverutils.NewApiError(502, "Failed to generate slides. Please try again.")
	}

	b := ooxml.NewPptxBuilder(topic)
	for _, slide := range slides {
		b.AddSlide(ooxml.Slide{
			Title:  slide.Title,
			Points: slide.Points,
			Notes:  slide.Notes,
		})
	}

	data, err := b.Bytes()
	if err != nil {
		return nil, "", err
	}
	return data, "study_slides.pptx", nil
}
