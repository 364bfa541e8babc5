package studyclient

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// SessionManager owns the single active study session: it round-trips the
// durable store on startup and guarantees every feature call has a session
// id or fails with ErrNoSession.
type SessionManager struct {
	client *Client
	store  *FileStore
}

func NewSessionManager(client *Client, store *FileStore) *SessionManager {
	return &SessionManager{
		client: client,
		store:  store,
	}
}

// Current returns the active session id without touching the network.
func (m *SessionManager) Current() (uuid.UUID, error) {
	if id, ok := m.store.Load(); ok {
		return id, nil
	}
	return uuid.Nil, ErrNoSession
}

// GetOrCreate returns the stored session id, creating a fresh session on
// the backend when none is stored.
func (m *SessionManager) GetOrCreate(ctx context.Context) (uuid.UUID, error) {
	if id, ok := m.store.Load(); ok {
		return id, nil
	}

	info, err := m.client.CreateSession(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	if err := m.store.Save(info.SessionId); err != nil {
		// The session exists server-side; losing the store only costs
		// persistence across runs.
		log.Printf("[WARN] Failed to persist session id: %v", err)
	}
	return info.SessionId, nil
}

// End deletes the active session. A failed delete is logged and swallowed;
// the local store is always cleared so the client starts clean either way.
func (m *SessionManager) End(ctx context.Context) (*DeleteSessionResult, error) {
	id, ok := m.store.Load()
	if !ok {
		return nil, ErrNoSession
	}

	res, err := m.client.DeleteSession(ctx, id)
	if err != nil {
		log.Printf("[WARN] Failed to delete session %s on server: %v", id, err)
		res = &DeleteSessionResult{SessionId: id}
	}

	if err := m.store.Clear(); err != nil {
		log.Printf("[WARN] Failed to clear session store: %v", err)
	}
	return res, nil
}
