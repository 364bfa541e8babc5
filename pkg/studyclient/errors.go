package studyclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession marks a feature call made before a session exists. It is
	// a local precondition failure, not a transport error.
	ErrNoSession = errors.New("no active study session")

	// ErrPollTimeout is returned when document polling exhausts its deadline
	// without the list turning non-empty.
	ErrPollTimeout = errors.New("timed out waiting for documents to be indexed")

	// ErrActionBusy rejects a Run while a previous run is still in flight.
	ErrActionBusy = errors.New("action already in progress")
)

// APIError is a non-2xx response from the backend, carrying the message from
// the server error envelope when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}
