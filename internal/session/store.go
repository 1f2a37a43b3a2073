// Package session owns the persisted authentication state: the bearer token
// and the cached user profile, always read and written together through one
// canonical path.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// Store is the single accessor for the persisted session. Implementations
// must be safe for concurrent use; every authenticated call reads through
// one of these, and only login/logout paths write.
type Store interface {
	// Save persists token and user together.
	Save(s types.Session) error
	// Load returns the stored session, or a zero session when absent.
	Load() (types.Session, error)
	// Clear removes token and user together.
	Clear() error
}

// ------------------------------
// File-backed store
// ------------------------------

// FileStore persists the session as a JSON file with 0600 permissions,
// surviving process restarts the way the SPA survived page reloads.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store writing to path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user session file location,
// <user-config-dir>/nutriplan/session.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nutriplan", "session.json"), nil
}

// Save implements Store.
func (f *FileStore) Save(s types.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o600)
}

// Load implements Store. A missing file is not an error; it means no one is
// logged in.
func (f *FileStore) Load() (types.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.Session{}, nil
	}
	if err != nil {
		return types.Session{}, err
	}
	var s types.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return types.Session{}, err
	}
	return s, nil
}

// Clear implements Store.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ------------------------------
// In-memory store
// ------------------------------

// MemStore keeps the session in process memory only. Used in tests and by
// embedders that manage persistence themselves.
type MemStore struct {
	mu sync.RWMutex
	s  types.Session
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

// Save implements Store.
func (m *MemStore) Save(s types.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

// Load implements Store.
func (m *MemStore) Load() (types.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s, nil
}

// Clear implements Store.
func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = types.Session{}
	return nil
}
