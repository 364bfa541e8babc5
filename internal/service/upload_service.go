package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUploadService interface {
	// Upload registers the incoming material and queues ingest jobs. The
	// response returns before indexing finishes; documents appear in the
	// list only once their chunks are stored.
	Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error)

	// ListDocuments returns the distinct sources that are fully indexed.
	ListDocuments(ctx context.Context, sessionId uuid.UUID) (*dto.DocumentListResponse, error)
}

type uploadService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewUploadService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IUploadService {
	return &uploadService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *uploadService) Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	if len(req.Files) == 0 && req.YoutubeURL == "" {
		return nil, serverutils.BadRequest("provide at least one file or a youtube_url")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("session not found")
	}

	var received []string

	for _, f := range req.Files {
		doc := entity.Document{
			Id:        uuid.New(),
			SessionId: req.SessionId,
			Source:    f.Filename,
			Kind:      entity.DocumentKindFile,
			Status:    entity.DocumentStatusProcessing,
			CreatedAt: time.Now(),
		}
		if err := uow.DocumentRepository().Create(ctx, &doc); err != nil {
			return nil, err
		}

		if err := s.enqueue(ctx, doc.Id, f.Content); err != nil {
			return nil, err
		}
		received = append(received, f.Filename)
	}

	if req.YoutubeURL != "" {
		doc := entity.Document{
			Id:        uuid.New(),
			SessionId: req.SessionId,
			Source:    req.YoutubeURL,
			Kind:      entity.DocumentKindYoutube,
			Status:    entity.DocumentStatusProcessing,
			CreatedAt: time.Now(),
		}
		if err := uow.DocumentRepository().Create(ctx, &doc); err != nil {
			return nil, err
		}

		if err := s.enqueue(ctx, doc.Id, nil); err != nil {
			return nil, err
		}
	}

	msg := fmt.Sprintf("Processing %d item(s). Documents will appear once indexed.", len(received)+boolToInt(req.YoutubeURL != ""))

	return &dto.UploadResponse{
		Status:        "processing",
		Message:       msg,
		FilesReceived: received,
		YoutubeURL:    req.YoutubeURL,
	}, nil
}

func (s *uploadService) enqueue(ctx context.Context, documentId uuid.UUID, content []byte) error {
	payload := dto.ProcessDocumentMessage{
		DocumentId: documentId,
		Content:    content,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, raw)
}

func (s *uploadService) ListDocuments(ctx context.Context, sessionId uuid.UUID) (*dto.DocumentListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sources, err := uow.ChunkRepository().DistinctSources(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sources == nil {
		sources = []string{}
	}

	return &dto.DocumentListResponse{Documents: sources}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
