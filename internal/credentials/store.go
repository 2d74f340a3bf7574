// Package credentials holds the session's bearer token.
//
// A Store starts empty, is set once per successful login and cleared once
// per logout or expiry. The resource client only reads from it.
package credentials

import "sync"

// Store is the holder of the current session token
type Store interface {
	// Token returns the current token and whether one is set
	Token() (string, bool)

	// Set replaces the current token
	Set(token string) error

	// Clear removes the current token
	Clear() error
}

// Compile-time verification that both stores implement Store
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// MemoryStore keeps the token for the lifetime of the process
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) Set(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
