package studyclient

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

// FileStore persists the active session id across runs in a small TOML file.
type FileStore struct {
	path string
}

type storedState struct {
	SessionId string    `toml:"session_id"`
	CreatedAt time.Time `toml:"created_at"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath is ~/.studybuddy/state.toml, falling back to the working
// directory when the home dir cannot be resolved.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studybuddy.toml"
	}
	return filepath.Join(home, ".studybuddy", "state.toml")
}

// Load returns the stored session id, or uuid.Nil and false when no state
// exists. A corrupt file is treated as absent.
func (s *FileStore) Load() (uuid.UUID, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return uuid.Nil, false
	}

	var st storedState
	if err := toml.Unmarshal(raw, &st); err != nil {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(st.SessionId)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *FileStore) Save(id uuid.UUID) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	raw, err := toml.Marshal(storedState{
		SessionId: id.String(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
