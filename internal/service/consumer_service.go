package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/internal/websocket"
	"ai-studybuddy-be/pkg/embedding"
	"ai-studybuddy-be/pkg/events"
	"ai-studybuddy-be/pkg/extract"
	pktNats "ai-studybuddy-be/pkg/nats"
	"ai-studybuddy-be/pkg/utils"
	"ai-studybuddy-be/pkg/youtube"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	transcriptFetcher *youtube.Fetcher
	eventPublisher    *pktNats.Publisher
	hub               *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	transcriptFetcher *youtube.Fetcher,
	eventPublisher *pktNats.Publisher,
	hub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		transcriptFetcher: transcriptFetcher,
		eventPublisher:    eventPublisher,
		hub:               hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProcessDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing document %s", payload.DocumentId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get document %s: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if doc == nil {
		log.Printf("[ERROR] Document not found: %s", payload.DocumentId)
		msg.Ack() // Session wiped mid-flight? Ack.
		return
	}

	text, err := cs.extractText(ctx, doc, payload.Content)
	if err != nil {
		// Extraction failures are terminal for this document.
		log.Printf("[ERROR] Failed to extract text for document %s: %v", doc.Id, err)
		if uerr := uow.DocumentRepository().UpdateStatus(ctx, doc.Id, entity.DocumentStatusFailed); uerr != nil {
			log.Printf("[ERROR] Failed to mark document %s failed: %v", doc.Id, uerr)
		}
		msg.Ack()
		return
	}

	// ChunkSize: 1500 chars (approx 375 tokens), Overlap: 200 chars
	chunks := utils.SplitText(text, 1500, 200)
	log.Printf("[INFO] Document %s split into %d chunks", doc.Id, len(chunks))

	var newChunks []*entity.DocumentChunk
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of document %s: %v", i, doc.Id, err)
			msg.Nack()
			return
		}

		newChunks = append(newChunks, &entity.DocumentChunk{
			Id:         uuid.New(),
			DocumentId: doc.Id,
			SessionId:  doc.SessionId,
			Source:     doc.Source,
			Content:    chunk,
			Embedding:  res.Embedding.Values,
			ChunkIndex: i,
			CreatedAt:  time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if len(newChunks) > 0 {
		if err := uow.ChunkRepository().CreateBulk(ctx, newChunks); err != nil {
			log.Printf("[ERROR] Failed to store chunks: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.DocumentRepository().UpdateStatus(ctx, doc.Id, entity.DocumentStatusReady); err != nil {
		log.Printf("[ERROR] Failed to mark document ready: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	cs.notifyDocumentsChanged(ctx, doc)

	log.Printf("[SUCCESS] Document indexed: %d chunks for %s", len(newChunks), doc.Source)
	msg.Ack()
}

func (cs *consumerService) extractText(ctx context.Context, doc *entity.Document, content []byte) (string, error) {
	switch doc.Kind {
	case entity.DocumentKindYoutube:
		if cs.transcriptFetcher == nil {
			return "", errors.New("transcript fetcher not configured")
		}
		return cs.transcriptFetcher.Transcript(ctx, doc.Source)
	default:
		return extract.Text(doc.Source, content)
	}
}

func (cs *consumerService) notifyDocumentsChanged(ctx context.Context, doc *entity.Document) {
	// Push the fresh document list so pollers and sockets converge.
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	sources, err := uow.ChunkRepository().DistinctSources(ctx, doc.SessionId)
	if err != nil {
		log.Printf("[WARN] Failed to list sources for session %s: %v", doc.SessionId, err)
		sources = nil
	}

	if cs.hub != nil {
		cs.hub.SendToSession(doc.SessionId, "documents_changed", map[string]interface{}{
			"session_id": doc.SessionId,
			"documents":  sources,
		})
	}

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventDocumentsChanged,
			Data: map[string]interface{}{
				"session_id": doc.SessionId,
				"source":     doc.Source,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENTS_CHANGED event: %v\n", err)
		}
	}
}
