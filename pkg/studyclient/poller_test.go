package studyclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocsServer(docsAfter int64) (*httptest.Server, *int64) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&calls, 1)
		docs := []string{}
		if docsAfter >= 0 && n > docsAfter {
			docs = []string{"notes.txt"}
		}
		writeEnvelope(w, 200, true, "ok", map[string]interface{}{"documents": docs})
	}))
	return srv, &calls
}

func TestPollerReturnsOnceDocumentsAppear(t *testing.T) {
	srv, calls := newDocsServer(2)
	defer srv.Close()

	poller := NewDocumentPoller(NewClient(srv.URL))
	poller.interval = 10 * time.Millisecond
	poller.timeout = time.Second

	var updates int64
	poller.OnUpdate = func([]string) { atomic.AddInt64(&updates, 1) }

	docs, err := poller.WaitForDocuments(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, docs)
	assert.GreaterOrEqual(t, atomic.LoadInt64(calls), int64(3))
	assert.Equal(t, atomic.LoadInt64(calls), atomic.LoadInt64(&updates))
}

func TestPollerTimesOut(t *testing.T) {
	srv, _ := newDocsServer(-1) // documents never appear
	defer srv.Close()

	poller := NewDocumentPoller(NewClient(srv.URL))
	poller.interval = 10 * time.Millisecond
	poller.timeout = 50 * time.Millisecond

	_, err := poller.WaitForDocuments(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPollTimeout)
}

func TestPollerCancellation(t *testing.T) {
	srv, calls := newDocsServer(-1)
	defer srv.Close()

	poller := NewDocumentPoller(NewClient(srv.URL))
	poller.interval = 10 * time.Millisecond
	poller.timeout = 10 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := poller.WaitForDocuments(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)

	// No further polls after cancellation.
	settled := atomic.LoadInt64(calls)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt64(calls))
}
