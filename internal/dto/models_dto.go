package dto

type ModelInfoResponse struct {
	LLMProvider       string `json:"llm_provider"`
	LLMModel          string `json:"llm_model"`
	EmbeddingProvider string `json:"embedding_provider"`
	EmbeddingModel    string `json:"embedding_model"`
	EmbeddingDims     int    `json:"embedding_dims"`
	SpeechEnabled     bool   `json:"speech_enabled"`
	ImageModel        string `json:"image_model,omitempty"`
}
