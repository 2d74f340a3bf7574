package credentials

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/uptask/internal/database"
)

// tokenName is the row the session token is stored under
const tokenName = "auth_token"

const storeTimeout = 5 * time.Second

// SQLiteStore persists the token in the local session database so separate
// CLI invocations share one login. Reads are served from memory after the
// first load.
type SQLiteStore struct {
	repo *database.CredentialRepository

	mu     sync.Mutex
	loaded bool
	token  string
}

// NewSQLiteStore wraps an initialized session database
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{repo: database.NewCredentialRepository(db)}
}

func (s *SQLiteStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		token, err := s.repo.Get(ctx, tokenName)
		switch {
		case err == nil:
			s.token = token
		case errors.Is(err, database.ErrCredentialNotFound):
			s.token = ""
		default:
			// an unreadable store behaves like an empty one; retry next call
			slog.Warn("failed to load session token", "error", err)
			return "", false
		}
		s.loaded = true
	}

	return s.token, s.token != ""
}

func (s *SQLiteStore) Set(token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Put(ctx, tokenName, token); err != nil {
		return err
	}
	s.token = token
	s.loaded = true
	return nil
}

func (s *SQLiteStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, tokenName); err != nil {
		return err
	}
	s.token = ""
	s.loaded = true
	return nil
}
