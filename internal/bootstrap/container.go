package bootstrap

import (
	"context"
	"log"

	"ai-studybuddy-be/internal/config"
	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/controller"
	"ai-studybuddy-be/internal/handler"
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/internal/repository/memory"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/internal/service"
	"ai-studybuddy-be/internal/websocket"
	"ai-studybuddy-be/pkg/embedding"
	"ai-studybuddy-be/pkg/embedding/jina"
	"ai-studybuddy-be/pkg/events"
	"ai-studybuddy-be/pkg/imagegen"
	imagegenOpenai "ai-studybuddy-be/pkg/imagegen/openai"
	"ai-studybuddy-be/pkg/llm/factory"
	"ai-studybuddy-be/pkg/speech"
	speechOpenai "ai-studybuddy-be/pkg/speech/openai"
	"ai-studybuddy-be/pkg/youtube"

	pktNats "ai-studybuddy-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	UploadController  controller.IUploadController
	ChatController    controller.IChatController
	QuizController    controller.IQuizController
	AudioController   controller.IAudioController
	ImageController   controller.IImageController
	SlidesController  controller.ISlidesController
	ModelsController  controller.IModelsController
	PlanController    controller.IPlanController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WsHandler    *handler.WsHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Ai.JinaApiKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.LLMApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Speech is optional; without a key the teacher panel degrades to text-only.
	var transcriber speech.Transcriber
	var synthesizer speech.Synthesizer
	if cfg.Ai.SpeechApiKey != "" {
		sp := speechOpenai.NewSpeechProvider(cfg.Ai.SpeechApiKey, cfg.Ai.SpeechBaseURL)
		transcriber = sp
		synthesizer = sp
		log.Printf("[INFO] Speech provider enabled")
	} else {
		log.Printf("[WARN] No SPEECH_API_KEY set, teacher audio will be text-only")
	}

	var imageProvider imagegen.ImageProvider = imagegenOpenai.NewImageProvider(
		cfg.Ai.ImageApiKey,
		cfg.Ai.ImageBaseURL,
		cfg.Ai.ImageModel,
	)

	transcriptFetcher := youtube.NewFetcher()

	// In-memory session existence cache
	sessionCache := memory.NewSessionCache()

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/websocket.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(constant.TopicDocumentIngest, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.TopicDocumentIngest,
		uowFactory,
		embeddingProvider,
		transcriptFetcher,
		natsPub,
		wsHub,
	)

	// A failed NATS connect leaves natsPub nil; keep the interface nil too
	// so the nil checks in services stay meaningful.
	var eventPublisher events.Publisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	sessionService := service.NewSessionService(uowFactory, eventPublisher, wsHub, sessionCache)
	uploadService := service.NewUploadService(uowFactory, publisherService)
	retrievalService := service.NewRetrievalService(uowFactory, embeddingProvider)
	chatService := service.NewChatService(retrievalService, llmProvider)
	quizService := service.NewQuizService(uowFactory, retrievalService, llmProvider)
	paperService := service.NewPaperService(retrievalService, llmProvider)
	audioService := service.NewAudioService(chatService, transcriber, synthesizer)
	imageService := service.NewImageService(retrievalService, llmProvider, imageProvider)
	slidesService := service.NewSlidesService(retrievalService, llmProvider)
	modelInfoService := service.NewModelInfoService(cfg)
	planService := service.NewPlanService(uowFactory, cfg, eventPublisher)

	// Document event fan-out worker
	notifierService := service.NewNotifierService(natsSub, wsHub, uowFactory, sysLogger)
	if natsSub != nil {
		go notifierService.Start()
	}

	wsHandler := handler.NewWsHandler(sessionService, wsHub, wsLogger)

	// 6. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		UploadController:  controller.NewUploadController(uploadService),
		ChatController:    controller.NewChatController(chatService),
		QuizController:    controller.NewQuizController(quizService, uploadService, paperService, planService),
		AudioController:   controller.NewAudioController(audioService, planService),
		ImageController:   controller.NewImageController(imageService, planService),
		SlidesController:  controller.NewSlidesController(slidesService),
		ModelsController:  controller.NewModelsController(modelInfoService),
		PlanController:    controller.NewPlanController(planService),

		WsHandler:    wsHandler,
		WebSocketHub: wsHub,

		ConsumerService: consumerService,
	}
}
