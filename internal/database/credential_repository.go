package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrCredentialNotFound is returned when no credential is stored under a name
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository stores named secrets in the session database
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository wraps an initialized session database
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Get returns the value stored under name
func (r *CredentialRepository) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM credentials WHERE name = ?", name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return value, nil
}

// Put upserts the value stored under name
func (r *CredentialRepository) Put(ctx context.Context, name, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, name, value)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// Delete removes name. Deleting a missing credential is not an error.
func (r *CredentialRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM credentials WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
