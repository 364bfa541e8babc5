package studyclient

import (
	"time"

	"github.com/google/uuid"
)

// Wire types mirror the backend JSON contract. They are kept separate from
// the server DTOs so the SDK stands on the HTTP contract alone.

type SessionInfo struct {
	SessionId uuid.UUID `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteSessionResult struct {
	SessionId     uuid.UUID `json:"session_id"`
	DeletedChunks int64     `json:"deleted_chunks"`
}

// File is one upload item.
type File struct {
	Name    string
	Content []byte
}

type UploadResult struct {
	Status        string   `json:"status"`
	Message       string   `json:"message"`
	FilesReceived []string `json:"files_received"`
	YoutubeURL    string   `json:"youtube_url,omitempty"`
}

type Source struct {
	Source string `json:"source"`
	Page   int    `json:"page,omitempty"`
	Pages  int    `json:"total_pages,omitempty"`
}

type ChatResult struct {
	Response string   `json:"response"`
	Sources  []Source `json:"sources"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Topic         string   `json:"topic"`
	Explanation   string   `json:"explanation,omitempty"`
}

type QuizResult struct {
	Question      string `json:"question"`
	Topic         string `json:"topic"`
	SelectedValue string `json:"selected"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type GeneratedQuiz struct {
	QuizId    uuid.UUID      `json:"quiz_id"`
	Questions []QuizQuestion `json:"questions"`
	Warning   string         `json:"warning,omitempty"`
}

type QuizAnalysis struct {
	Score          int      `json:"score"`
	Total          int      `json:"total"`
	Percentage     float64  `json:"percentage"`
	WeakTopics     []string `json:"weak_topics"`
	Recommendation string   `json:"recommendation"`
}

type PaperSection struct {
	Title        string   `json:"title"`
	Instructions string   `json:"instructions,omitempty"`
	Marks        int      `json:"marks"`
	Questions    []string `json:"questions"`
}

type Paper struct {
	ExamName     string         `json:"exam_name"`
	DurationMins int            `json:"duration_mins"`
	TotalMarks   int            `json:"total_marks"`
	Sections     []PaperSection `json:"sections"`
}

type PaperOutlineSection struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions,omitempty"`
	Marks        int    `json:"marks"`
	Count        int    `json:"count"`
}

// PaperOutline is the exam structure the backend worked from, either
// extracted from the uploaded reference paper or inferred from the session
// material.
type PaperOutline struct {
	ExamName     string                `json:"exam_name"`
	DurationMins int                   `json:"duration_mins"`
	TotalMarks   int                   `json:"total_marks"`
	Sections     []PaperOutlineSection `json:"sections"`
}

type GeneratedPaper struct {
	Paper           Paper        `json:"paper"`
	OriginalPattern PaperOutline `json:"original_pattern"`
}

type AudioTurn struct {
	AudioBase64 string   `json:"audio_base64,omitempty"`
	UserText    string   `json:"user_text"`
	AiText      string   `json:"ai_text"`
	Sources     []Source `json:"sources"`
}

type GeneratedImage struct {
	ImageData     string `json:"image_data"`
	OriginalTopic string `json:"original_topic,omitempty"`
	Concept       string `json:"concept,omitempty"`
	PromptUsed    string `json:"prompt_used"`
	ContextUsed   string `json:"context_used,omitempty"`
	Note          string `json:"note,omitempty"`
}

type ModelInfo struct {
	LLMProvider       string `json:"llm_provider"`
	LLMModel          string `json:"llm_model"`
	EmbeddingProvider string `json:"embedding_provider"`
	EmbeddingModel    string `json:"embedding_model"`
	EmbeddingDims     int    `json:"embedding_dims"`
	SpeechEnabled     bool   `json:"speech_enabled"`
	ImageModel        string `json:"image_model,omitempty"`
}

type PlanStatus struct {
	Plan   string `json:"plan"`
	Status string `json:"status"`
	// Entitled is the server's verdict on gated features, covering grace
	// cases like a canceled plan still inside its paid period.
	Entitled    bool       `json:"entitled"`
	ProFeatures []string   `json:"pro_features"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
}

type UpgradeResult struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
