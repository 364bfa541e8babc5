package service

import (
	"context"
	"fmt"
	"time"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/memory"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/internal/websocket"
	"ai-studybuddy-be/pkg/events"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	// Delete wipes a session and everything indexed under it, reporting how
	// many chunks were removed.
	Delete(ctx context.Context, sessionId uuid.UUID) (*dto.DeleteSessionResponse, error)
	Exists(ctx context.Context, sessionId uuid.UUID) (bool, error)
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher events.Publisher
	hub            *websocket.Hub
	sessionCache   *memory.SessionCache
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher events.Publisher,
	hub *websocket.Hub,
	sessionCache *memory.SessionCache,
) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		hub:            hub,
		sessionCache:   sessionCache,
	}
}

func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.StudySession{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
	}
	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	if s.sessionCache != nil {
		s.sessionCache.MarkExists(session.Id)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventSessionCreated,
			Data: map[string]interface{}{
				"session_id": session.Id,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SESSION_CREATED event: %v\n", err)
		}
	}

	return &dto.CreateSessionResponse{
		SessionId: session.Id,
		CreatedAt: session.CreatedAt,
	}, nil
}

func (s *sessionService) Delete(ctx context.Context, sessionId uuid.UUID) (*dto.DeleteSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	deletedChunks, err := uow.ChunkRepository().DeleteBySessionIdUnscoped(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	if err := uow.DocumentRepository().DeleteBySessionIdUnscoped(ctx, sessionId); err != nil {
		return nil, err
	}

	if err := uow.SessionRepository().Delete(ctx, sessionId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.sessionCache != nil {
		s.sessionCache.Forget(sessionId)
	}

	if s.hub != nil {
		s.hub.SendToSession(sessionId, "documents_changed", map[string]interface{}{
			"session_id": sessionId,
			"documents":  []string{},
		})
	}

	// Event delivery is auxiliary; the wipe already committed.
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventSessionDeleted,
			Data: map[string]interface{}{
				"session_id":     sessionId,
				"deleted_chunks": deletedChunks,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SESSION_DELETED event: %v\n", err)
		}
	}

	return &dto.DeleteSessionResponse{
		SessionId:     sessionId,
		DeletedChunks: deletedChunks,
	}, nil
}

func (s *sessionService) Exists(ctx context.Context, sessionId uuid.UUID) (bool, error) {
	if s.sessionCache != nil && s.sessionCache.Exists(sessionId) {
		return true, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return false, err
	}
	if session != nil && s.sessionCache != nil {
		s.sessionCache.MarkExists(sessionId)
	}
	return session != nil, nil
}
