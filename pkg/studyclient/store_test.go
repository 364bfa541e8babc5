package studyclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.toml")
	store := NewFileStore(path)

	_, ok := store.Load()
	assert.False(t, ok, "fresh store is empty")

	id := uuid.New()
	require.NoError(t, store.Save(id))

	got, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, id, got)

	require.NoError(t, store.Clear())
	_, ok = store.Load()
	assert.False(t, ok)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestFileStoreCorruptFileTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml {{{"), 0o644))

	store := NewFileStore(path)
	_, ok := store.Load()
	assert.False(t, ok)
}

func TestSessionManagerEndClearsStoreOnServerFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	store := NewFileStore(path)
	require.NoError(t, store.Save(uuid.New()))

	// Unreachable server: delete fails, store must clear anyway.
	manager := NewSessionManager(NewClient("http://127.0.0.1:0"), store)
	res, err := manager.End(t.Context())
	require.NoError(t, err)
	require.NotNil(t, res)

	_, ok := store.Load()
	assert.False(t, ok)

	_, err = manager.End(t.Context())
	assert.ErrorIs(t, err, ErrNoSession)
}
