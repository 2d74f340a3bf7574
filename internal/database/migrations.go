package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the session schema. Every statement is idempotent.
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS credentials (
				name TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		return err
	})
}
