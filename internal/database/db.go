// Package database handles the local SQLite session database
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns ~/.uptask/session.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".uptask", "session.db"), nil
}

// InitDB opens (creating if needed) the session database at path and runs
// migrations. Use ":memory:" for a throwaway database.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		// several CLI invocations may touch the session at once
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// in-memory databases are per connection, and SQLite wants a single writer anyway
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
