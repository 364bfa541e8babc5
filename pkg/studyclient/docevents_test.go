package studyclient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocEventBusDelivers(t *testing.T) {
	bus := NewDocEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	sessionID := uuid.New()
	require.NoError(t, bus.Publish(sessionID, []string{"notes.txt"}))

	select {
	case evt := <-events:
		assert.Equal(t, sessionID, evt.SessionId)
		assert.Equal(t, []string{"notes.txt"}, evt.Documents)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestDocEventBusLateSubscriberMissesEarlierEvents(t *testing.T) {
	bus := NewDocEventBus()
	defer bus.Close()

	require.NoError(t, bus.Publish(uuid.New(), []string{"early.txt"}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	select {
	case evt := <-events:
		t.Fatalf("late subscriber should not receive %v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}
