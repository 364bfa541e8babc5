package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ImageProvider calls an OpenAI-compatible images endpoint and returns the
// result as base64 (b64_json response format).
type ImageProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewImageProvider(apiKey, baseURL, model string) *ImageProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "dall-e-3"
	}
	return &ImageProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

func (p *ImageProvider) Model() string {
	return p.model
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *ImageProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := imageRequest{
		Model:          p.model,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/images/generations", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var imgResp imageResponse
	if err := json.Unmarshal(bodyBytes, &imgResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if imgResp.Error != nil {
		return "", fmt.Errorf("image api returned error: %s", imgResp.Error.Message)
	}
	if len(imgResp.Data) == 0 {
		return "", fmt.Errorf("empty image data from api")
	}
	return imgResp.Data[0].B64JSON, nil
}
