package studyclient

import (
	"context"
	"sync"
)

// ActionState is the lifecycle of one asynchronous UI action.
type ActionState string

const (
	ActionIdle    ActionState = "idle"
	ActionPending ActionState = "pending"
	ActionSuccess ActionState = "success"
	ActionError   ActionState = "error"
)

// AsyncAction runs one operation at a time. A Run while another run is in
// flight is rejected with ErrActionBusy, never queued.
type AsyncAction struct {
	mu      sync.Mutex
	state   ActionState
	lastErr error
	done    chan struct{}
}

func NewAsyncAction() *AsyncAction {
	return &AsyncAction{state: ActionIdle}
}

// Run executes fn in the background. It returns ErrActionBusy when a
// previous run has not finished yet.
func (a *AsyncAction) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	a.mu.Lock()
	if a.state == ActionPending {
		a.mu.Unlock()
		return ErrActionBusy
	}
	a.state = ActionPending
	a.lastErr = nil
	done := make(chan struct{})
	a.done = done
	a.mu.Unlock()

	go func() {
		err := fn(ctx)

		a.mu.Lock()
		if err != nil {
			a.state = ActionError
			a.lastErr = err
		} else {
			a.state = ActionSuccess
		}
		a.mu.Unlock()
		close(done)
	}()
	return nil
}

// Wait blocks until the current run finishes and returns its error. It
// returns immediately when nothing is running.
func (a *AsyncAction) Wait() error {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()

	if done != nil {
		<-done
	}
	return a.Err()
}

func (a *AsyncAction) State() ActionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *AsyncAction) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Reset returns a finished action to idle. Pending runs are unaffected.
func (a *AsyncAction) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != ActionPending {
		a.state = ActionIdle
		a.lastErr = nil
	}
}
