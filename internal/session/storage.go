package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/prideconnect/prideconnect/internal/errors"
)

// TokenStorage persists the bearer token between runs. Exactly one entry is
// stored; an absent entry means logged out.
//
// Implementations must be safe for concurrent use.
type TokenStorage interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)

	// Save persists the token, replacing any previous value.
	Save(token string) error

	// Clear removes the persisted token. Clearing an empty storage is a no-op.
	Clear() error
}

// storedAuth is the on-disk credential envelope.
type storedAuth struct {
	Token string `json:"token"`
}

// FileStorage persists the token as a mode-0600 JSON file, by default under
// the user configuration directory.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage writing to path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultAuthPath returns the default credential file location
// (~/.config/prideconnect/auth.json on Linux).
func DefaultAuthPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorageRead, "locate user config dir", err)
	}
	return filepath.Join(dir, "prideconnect", "auth.json"), nil
}

// Path returns the credential file location.
func (s *FileStorage) Path() string {
	return s.path
}

// Load returns the persisted token, or "" when the file does not exist.
func (s *FileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(errors.ErrCodeStorageRead, "read credential file", err)
	}

	var auth storedAuth
	if err := json.Unmarshal(data, &auth); err != nil {
		// A corrupt credential file is treated as logged out rather than
		// wedging every startup.
		return "", nil
	}

	return auth.Token, nil
}

// Save persists the token with owner-only permissions.
func (s *FileStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeStorageWrite, "create credential dir", err)
	}

	data, err := json.MarshalIndent(storedAuth{Token: token}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorageWrite, "encode credential file", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeStorageWrite, "write credential file", err)
	}

	return nil
}

// Clear removes the credential file.
func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStorageWrite, "remove credential file", err)
	}
	return nil
}

// MemoryStorage is an in-memory TokenStorage for tests.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the stored token.
func (s *MemoryStorage) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save replaces the stored token.
func (s *MemoryStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored token.
func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
