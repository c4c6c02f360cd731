package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
)

// A TokenStore persists the bearer token across process restarts.
// Load returns an empty string when nothing is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// TokenFileName is the well-known file the FileStore keeps the token in.
const TokenFileName = "token"

// A FileStore keeps the token in a single file, replaced atomically on save.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path, creating its directory.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("error creating token directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the token is stored in.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored token.
func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save replaces the stored token.
func (s *FileStore) Save(token string) error {
	if err := atomic.WriteFile(s.path, strings.NewReader(token)); err != nil {
		return err
	}
	return os.Chmod(s.path, 0o600)
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// A MemoryStore keeps the token in memory.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates a MemoryStore holding token.
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

// Load returns the held token.
func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save replaces the held token.
func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear drops the held token.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
