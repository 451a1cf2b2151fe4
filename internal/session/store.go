// Package session holds the logged-in user's state: the token, the
// identity decoded from it, and the set of jobs applied to.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed key under which the session token persists.
// Absence of the file means "logged out".
const tokenFileName = "token"

// TokenStore persists a single token string across runs.
type TokenStore interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)
	// Save writes the token, replacing any previous value.
	Save(token string) error
	// Clear removes the persisted token. Clearing an empty store is a no-op.
	Clear() error
}

// FileStore persists the token as a single file inside a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. An empty dir resolves to
// a "jobly" directory under the user config directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		dir = filepath.Join(configDir, "jobly")
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the persisted token. A missing file is "logged out", not an
// error.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the store directory if needed.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	path := filepath.Join(s.dir, tokenFileName)
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the persisted token.
func (s *FileStore) Clear() error {
	err := os.Remove(filepath.Join(s.dir, tokenFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory TokenStore for tests and ephemeral sessions.
type MemoryStore struct {
	token string
}

// Load returns the stored token.
func (s *MemoryStore) Load() (string, error) { return s.token, nil }

// Save replaces the stored token.
func (s *MemoryStore) Save(token string) error {
	s.token = token
	return nil
}

// Clear empties the store.
func (s *MemoryStore) Clear() error {
	s.token = ""
	return nil
}
