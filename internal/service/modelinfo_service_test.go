package service

import (
	"testing"

	"ai-studybuddy-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestModelInfoEmbeddingModelPerProvider(t *testing.T) {
	tests := []struct {
		provider  string
		wantModel string
	}{
		{"ollama", "nomic-embed-text"},
		{"jina", "jina-embeddings-v2-base-en"},
		{"gemini", "text-embedding-004"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Ai.EmbeddingProvider = tt.provider
			cfg.Ai.OllamaEmbedModel = "nomic-embed-text"

			info := NewModelInfoService(cfg).Info()
			assert.Equal(t, tt.provider, info.EmbeddingProvider)
			assert.Equal(t, tt.wantModel, info.EmbeddingModel)
		})
	}
}
