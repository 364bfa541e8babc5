package studyclient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultPollTimeout  = 60 * time.Second
)

// DocumentPoller watches a session's document list until it turns non-empty.
// The server exposes no per-job status, so "documents appeared" is the
// completion signal for uploads.
type DocumentPoller struct {
	client   *Client
	interval time.Duration
	timeout  time.Duration

	// OnUpdate, when set, receives the document list after each poll.
	OnUpdate func(docs []string)
}

func NewDocumentPoller(client *Client) *DocumentPoller {
	return &DocumentPoller{
		client:   client,
		interval: defaultPollInterval,
		timeout:  defaultPollTimeout,
	}
}

// WaitForDocuments polls every interval until the list is non-empty, the
// deadline passes (ErrPollTimeout), or ctx is cancelled (ctx.Err()). A
// response arriving after cancellation is discarded, not delivered.
func (p *DocumentPoller) WaitForDocuments(ctx context.Context, sessionID uuid.UUID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		docs, err := p.client.ListDocuments(ctx, sessionID)
		if ctx.Err() != nil {
			// Deadline or cancellation won the race; drop whatever the
			// in-flight request returned.
			if ctx.Err() == context.DeadlineExceeded {
				return nil, ErrPollTimeout
			}
			return nil, ctx.Err()
		}
		if err == nil {
			if p.OnUpdate != nil {
				p.OnUpdate(docs)
			}
			if len(docs) > 0 {
				return docs, nil
			}
		}
		// Transient errors are retried until the deadline.

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, ErrPollTimeout
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
