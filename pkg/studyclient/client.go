package studyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is the HTTP façade over the study backend. One method per REST
// operation; transport errors pass through unwrapped, non-2xx responses
// become *APIError with the server envelope message when present.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken attaches a bearer token to every request. Only the plan
// endpoints and Pro feature gates care about identity.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the backend response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Status: resp.StatusCode}
		}
		return fmt.Errorf("unexpected response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// downloadBinary posts payload and streams the raw (non-envelope) response
// body to destPath. Error responses still carry the JSON envelope.
func (c *Client) downloadBinary(ctx context.Context, path string, payload interface{}, destPath string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			return &APIError{Status: resp.StatusCode, Message: env.Message}
		}
		return &APIError{Status: resp.StatusCode}
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, resp.Body)
	return err
}

// CreateSession starts a fresh anonymous study session.
func (c *Client) CreateSession(ctx context.Context) (*SessionInfo, error) {
	var out SessionInfo
	if err := c.postJSON(ctx, "/api/session/create", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSession wipes the session and everything indexed under it.
func (c *Client) DeleteSession(ctx context.Context, sessionID uuid.UUID) (*DeleteSessionResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/session/"+sessionID.String(), nil)
	if err != nil {
		return nil, err
	}
	var out DeleteSessionResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload sends files and/or a youtube URL for indexing. At least one source
// is required; the check happens here before any network call.
func (c *Client) Upload(ctx context.Context, sessionID uuid.UUID, files []File, youtubeURL string) (*UploadResult, error) {
	if len(files) == 0 && youtubeURL == "" {
		return nil, fmt.Errorf("provide at least one file or a youtube URL")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("session_id", sessionID.String()); err != nil {
		return nil, err
	}
	if youtubeURL != "" {
		if err := w.WriteField("youtube_url", youtubeURL); err != nil {
			return nil, err
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out UploadResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDocuments returns the names of fully indexed documents. The list is
// empty while processing is still in flight.
func (c *Client) ListDocuments(ctx context.Context, sessionID uuid.UUID) ([]string, error) {
	var out struct {
		Documents []string `json:"documents"`
	}
	if err := c.get(ctx, "/api/quiz/documents/"+sessionID.String(), &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

func (c *Client) Chat(ctx context.Context, sessionID uuid.UUID, message string) (*ChatResult, error) {
	payload := map[string]interface{}{
		"session_id": sessionID,
		"message":    message,
	}
	var out ChatResult
	if err := c.postJSON(ctx, "/api/chat", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateQuiz builds a quiz round. An empty or "general" topic quizzes the
// whole session.
func (c *Client) GenerateQuiz(ctx context.Context, sessionID uuid.UUID, topic, difficulty string, numQuestions int) (*GeneratedQuiz, error) {
	payload := map[string]interface{}{
		"session_id":    sessionID,
		"topic":         topic,
		"difficulty":    difficulty,
		"num_questions": numQuestions,
	}
	var out GeneratedQuiz
	if err := c.postJSON(ctx, "/api/quiz/generate", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeQuiz(ctx context.Context, sessionID uuid.UUID, results []QuizResult) (*QuizAnalysis, error) {
	payload := map[string]interface{}{
		"session_id": sessionID,
		"results":    results,
	}
	var out QuizAnalysis
	if err := c.postJSON(ctx, "/api/quiz/analyze", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary asks for a brief or detailed summary, optionally restricted to a
// single document by name.
func (c *Client) Summary(ctx context.Context, sessionID uuid.UUID, summaryType, sourceFilter string) (string, error) {
	payload := map[string]interface{}{
		"session_id":    sessionID,
		"summary_type":  summaryType,
		"source_filter": sourceFilter,
	}
	var out struct {
		Summary string `json:"summary"`
	}
	if err := c.postJSON(ctx, "/api/quiz/summary", payload, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// GeneratePaper builds a sample exam paper from the session material.
// reference may carry a past exam paper whose structure the generated paper
// copies; nil lets the backend design a structure itself.
func (c *Client) GeneratePaper(ctx context.Context, sessionID uuid.UUID, subject string, reference *File) (*GeneratedPaper, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("session_id", sessionID.String()); err != nil {
		return nil, err
	}
	if subject != "" {
		if err := w.WriteField("subject", subject); err != nil {
			return nil, err
		}
	}
	if reference != nil {
		part, err := w.CreateFormFile("file", reference.Name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(reference.Content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quiz/pyq-generator", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out GeneratedPaper
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadPaper renders a previously generated paper to a .docx file. The
// paper stays with the caller, so a failed download can simply be retried.
func (c *Client) DownloadPaper(ctx context.Context, paper *Paper, destPath string) error {
	payload := map[string]interface{}{"paper": paper}
	return c.downloadBinary(ctx, "/api/quiz/download-paper", payload, destPath)
}

// AudioInteract sends a teacher turn: typed text, a recorded clip, or both
// (text wins). audio may be nil.
func (c *Client) AudioInteract(ctx context.Context, sessionID uuid.UUID, text, language string, audio []byte, audioName string) (*AudioTurn, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("session_id", sessionID.String()); err != nil {
		return nil, err
	}
	if text != "" {
		if err := w.WriteField("text", text); err != nil {
			return nil, err
		}
	}
	if language != "" {
		if err := w.WriteField("language", language); err != nil {
			return nil, err
		}
	}
	if len(audio) > 0 {
		if audioName == "" {
			audioName = "recording.webm"
		}
		part, err := w.CreateFormFile("audio", audioName)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(audio); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/audio/interact", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out AudioTurn
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateImage renders an illustration of topic. style is optional; the
// backend defaults to an educational diagram look.
func (c *Client) GenerateImage(ctx context.Context, topic, style string) (*GeneratedImage, error) {
	payload := map[string]interface{}{
		"topic": topic,
		"style": style,
	}
	var out GeneratedImage
	if err := c.postJSON(ctx, "/api/image/generate", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateImageFromContext(ctx context.Context, sessionID uuid.UUID, concept string) (*GeneratedImage, error) {
	payload := map[string]interface{}{
		"session_id": sessionID,
		"concept":    concept,
	}
	var out GeneratedImage
	if err := c.postJSON(ctx, "/api/image/generate-from-context", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateSlides writes the generated .pptx deck to destPath.
func (c *Client) GenerateSlides(ctx context.Context, sessionID uuid.UUID, topic string, numSlides int, destPath string) error {
	payload := map[string]interface{}{
		"session_id": sessionID,
		"topic":      topic,
		"num_slides": numSlides,
	}
	return c.downloadBinary(ctx, "/api/slides/generate", payload, destPath)
}

func (c *Client) Models(ctx context.Context) (*ModelInfo, error) {
	var out ModelInfo
	if err := c.get(ctx, "/api/models", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PlanStatus(ctx context.Context) (*PlanStatus, error) {
	var out PlanStatus
	if err := c.get(ctx, "/api/plan/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpgradePlan(ctx context.Context) (*UpgradeResult, error) {
	var out UpgradeResult
	if err := c.postJSON(ctx, "/api/plan/upgrade", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
