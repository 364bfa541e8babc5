package studyclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncActionSingleInFlight(t *testing.T) {
	action := NewAsyncAction()
	release := make(chan struct{})

	err := action.Run(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, ActionPending, action.State())

	// A second run while busy is rejected, not queued.
	err = action.Run(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrActionBusy)

	close(release)
	require.NoError(t, action.Wait())
	assert.Equal(t, ActionSuccess, action.State())

	// Finished actions accept a new run.
	require.NoError(t, action.Run(context.Background(), func(ctx context.Context) error { return nil }))
	require.NoError(t, action.Wait())
}

func TestAsyncActionError(t *testing.T) {
	action := NewAsyncAction()
	boom := errors.New("boom")

	require.NoError(t, action.Run(context.Background(), func(ctx context.Context) error { return boom }))
	assert.ErrorIs(t, action.Wait(), boom)
	assert.Equal(t, ActionError, action.State())
	assert.ErrorIs(t, action.Err(), boom)

	action.Reset()
	assert.Equal(t, ActionIdle, action.State())
	assert.NoError(t, action.Err())
}
