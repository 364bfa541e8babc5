package service

import (
	"ai-studybuddy-be/internal/config"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/pkg/embedding"
	"ai-studybuddy-be/pkg/embedding/jina"
)

type IModelInfoService interface {
	Info() *dto.ModelInfoResponse
}

type modelInfoService struct {
	cfg *config.Config
}

func NewModelInfoService(cfg *config.Config) IModelInfoService {
	return &modelInfoService{cfg: cfg}
}

// embeddingModel names the model the configured embedding provider runs.
// Gemini and Jina use fixed models; only Ollama is configurable.
func (s *modelInfoService) embeddingModel() string {
	switch s.cfg.Ai.EmbeddingProvider {
	case "ollama":
		return s.cfg.Ai.OllamaEmbedModel
	case "jina":
		return jina.ModelName
	default:
		return embedding.GeminiModelName
	}
}

func (s *modelInfoService) Info() *dto.ModelInfoResponse {
	return &dto.ModelInfoResponse{
		LLMProvider:       s.cfg.Ai.LLMProvider,
		LLMModel:          s.cfg.Ai.LLMModel,
		EmbeddingProvider: s.cfg.Ai.EmbeddingProvider,
		EmbeddingModel:    s.embeddingModel(),
		EmbeddingDims:     s.cfg.Ai.EmbeddingDims,
		SpeechEnabled:     s.cfg.Ai.SpeechApiKey != "",
		ImageModel:        s.cfg.Ai.ImageModel,
	}
}
