package studyclient

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const topicDocumentsChanged = "documents_changed"

// DocumentsChanged announces a new document list for a session.
type DocumentsChanged struct {
	SessionId uuid.UUID `json:"session_id"`
	Documents []string  `json:"documents"`
}

// DocEventBus is the in-process fan-out for document list changes: the
// upload flow publishes, panels subscribe. Delivery is fire-and-forget;
// subscribers that join late miss earlier events.
type DocEventBus struct {
	pubSub *gochannel.GoChannel
}

func NewDocEventBus() *DocEventBus {
	return &DocEventBus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NopLogger{},
		),
	}
}

func (b *DocEventBus) Publish(sessionID uuid.UUID, documents []string) error {
	payload, err := json.Marshal(DocumentsChanged{
		SessionId: sessionID,
		Documents: documents,
	})
	if err != nil {
		return err
	}
	return b.pubSub.Publish(topicDocumentsChanged, message.NewMessage(watermill.NewUUID(), payload))
}

// Subscribe returns a channel of document change events. The channel closes
// when ctx is cancelled or the bus is closed.
func (b *DocEventBus) Subscribe(ctx context.Context) (<-chan DocumentsChanged, error) {
	messages, err := b.pubSub.Subscribe(ctx, topicDocumentsChanged)
	if err != nil {
		return nil, err
	}

	out := make(chan DocumentsChanged)
	go func() {
		defer close(out)
		for msg := range messages {
			var evt DocumentsChanged
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				msg.Ack()
				continue
			}
			msg.Ack()
			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (b *DocEventBus) Close() error {
	return b.pubSub.Close()
}
