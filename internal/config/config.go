package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Billing  BillingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	// Text generation
	LLMProvider string // "ollama" or "openai"
	LLMModel    string
	LLMBaseURL  string
	LLMApiKey   string

	// Embeddings
	EmbeddingProvider string // "gemini", "jina" or "ollama"
	OllamaBaseURL     string
	OllamaEmbedModel  string
	GeminiApiKey      string
	JinaApiKey        string
	EmbeddingDims     int

	// Speech and images (OpenAI-compatible endpoints)
	SpeechApiKey  string
	SpeechBaseURL string
	ImageApiKey   string
	ImageBaseURL  string
	ImageModel    string

	Region string // reported by the models endpoint
}

type BillingConfig struct {
	MidtransServerKey string
	MidtransSandbox   bool
	ProPlanPriceIDR   int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			LLMBaseURL:        getEnv("LLM_BASE_URL", ""),
			LLMApiKey:         getEnv("LLM_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiApiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JinaApiKey:        getEnv("JINA_API_KEY", ""),
			EmbeddingDims:     getEnvAsInt("EMBEDDING_DIMS", 768),
			SpeechApiKey:      getEnv("SPEECH_API_KEY", ""),
			SpeechBaseURL:     getEnv("SPEECH_BASE_URL", ""),
			ImageApiKey:       getEnv("IMAGE_API_KEY", ""),
			ImageBaseURL:      getEnv("IMAGE_BASE_URL", ""),
			ImageModel:        getEnv("IMAGE_MODEL", "dall-e-3"),
			Region:            getEnv("AI_REGION", "local"),
		},
		Billing: BillingConfig{
			MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
			MidtransSandbox:   getEnv("MIDTRANS_ENV", "sandbox") != "production",
			ProPlanPriceIDR:   int64(getEnvAsInt("PRO_PLAN_PRICE_IDR", 79000)),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
