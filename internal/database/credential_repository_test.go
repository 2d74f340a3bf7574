package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCredentialRepository_PutGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(setupTestDB(t))

	if err := repo.Put(ctx, "auth_token", "abc"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := repo.Get(ctx, "auth_token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "abc" {
		t.Errorf("Expected 'abc', got %q", got)
	}

	// Upsert replaces the value
	if err := repo.Put(ctx, "auth_token", "def"); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	got, _ = repo.Get(ctx, "auth_token")
	if got != "def" {
		t.Errorf("Expected 'def' after upsert, got %q", got)
	}
}

func TestCredentialRepository_Missing(t *testing.T) {
	repo := NewCredentialRepository(setupTestDB(t))

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, ErrCredentialNotFound) {
		t.Errorf("Expected ErrCredentialNotFound, got %v", err)
	}
}

func TestCredentialRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(setupTestDB(t))

	_ = repo.Put(ctx, "auth_token", "abc")
	if err := repo.Delete(ctx, "auth_token"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, "auth_token"); !errors.Is(err, ErrCredentialNotFound) {
		t.Errorf("Expected credential to be gone, got %v", err)
	}

	// Deleting twice is fine
	if err := repo.Delete(ctx, "auth_token"); err != nil {
		t.Errorf("Expected no error deleting missing credential, got %v", err)
	}
}

func TestInitDB_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if err := NewCredentialRepository(db).Put(ctx, "auth_token", "persisted"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	_ = db.Close()

	// Reopen runs migrations again and keeps data
	db, err = InitDB(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	got, err := NewCredentialRepository(db).Get(ctx, "auth_token")
	if err != nil || got != "persisted" {
		t.Errorf("Expected persisted token, got %q (%v)", got, err)
	}
}
