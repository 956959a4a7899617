package internal

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenFileName is the single file the session token is persisted under.
const TokenFileName = "token"

// TokenStore is the single source of truth for the bearer token. The token is
// an opaque string end-to-end; presence of a token is the only client-side
// signal of "logged in".
type TokenStore interface {
	// Get returns the stored token, or "" when no token is stored. It never
	// fails; an unreadable store behaves like an empty one.
	Get() string
	// Set persists the token, overwriting any prior value.
	Set(token string) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// FileTokenStore persists the token as a single file inside a directory,
// readable only by the owning user.
type FileTokenStore struct {
	dir string
}

// NewFileTokenStore creates a token store rooted at dir. The directory is
// created lazily on the first Set.
func NewFileTokenStore(dir string) *FileTokenStore {
	return &FileTokenStore{dir: dir}
}

func (s *FileTokenStore) path() string {
	return filepath.Join(s.dir, TokenFileName)
}

// Get returns the stored token or "" if none exists.
func (s *FileTokenStore) Get() string {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set persists the token, overwriting any prior value.
func (s *FileTokenStore) Set(token string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0600)
}

// Clear removes the stored token.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTokenStore holds the token in memory only. Used by tests and by
// callers that must not persist credentials.
type MemoryTokenStore struct {
	token string
}

// Get returns the stored token or "".
func (s *MemoryTokenStore) Get() string {
	return s.token
}

// Set stores the token.
func (s *MemoryTokenStore) Set(token string) error {
	s.token = token
	return nil
}

// Clear removes the stored token.
func (s *MemoryTokenStore) Clear() error {
	s.token = ""
	return nil
}
