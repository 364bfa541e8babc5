package service

import (
	"context"
	"fmt"
	"strings"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/internal/websocket"
	"ai-studybuddy-be/pkg/events"
	pktNats "ai-studybuddy-be/pkg/nats"

	"github.com/google/uuid"
)

// NotifierService bridges the durable event bus to connected websockets.
// The ingest worker publishes document events to NATS; instances that only
// serve HTTP traffic pick them up here and push them to their local clients.
type NotifierService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNotifierService(
	sub *pktNats.Subscriber,
	hub *websocket.Hub,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) *NotifierService {
	return &NotifierService{
		subscriber: sub,
		hub:        hub,
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotifierService) Start() {
	err := s.subscriber.Subscribe("events.>", "notifier-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotifierService", "Failed to start event subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotifierService", "Notifier started, listening to events.>", nil)
}

func (s *NotifierService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotifierService", fmt.Sprintf("Processing event: %s", typeCode), nil)

	switch typeCode {
	case constant.EventDocumentsChanged:
		return s.pushDocumentList(ctx, event)
	case constant.EventSessionDeleted:
		sid, ok := sessionIDFromPayload(event.Payload())
		if !ok {
			return nil
		}
		s.hub.SendToSession(sid, "documents_changed", map[string]interface{}{
			"session_id": sid,
			"documents":  []string{},
		})
		return nil
	default:
		return nil
	}
}

func (s *NotifierService) pushDocumentList(ctx context.Context, event events.Event) error {
	sid, ok := sessionIDFromPayload(event.Payload())
	if !ok {
		s.logger.Warn("NotifierService", "Event missing session_id", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sources, err := uow.ChunkRepository().DistinctSources(ctx, sid)
	if err != nil {
		return err
	}

	s.hub.SendToSession(sid, "documents_changed", map[string]interface{}{
		"session_id": sid,
		"documents":  sources,
	})
	return nil
}

func sessionIDFromPayload(payload map[string]interface{}) (uuid.UUID, bool) {
	raw, ok := payload["session_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	sid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return sid, true
}
