package app

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/uptask/internal/config"
	"github.com/thenoetrevino/uptask/internal/credentials"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
	"github.com/thenoetrevino/uptask/internal/testutil/fakeapi"
)

func TestNew(t *testing.T) {
	app := New(config.Default(), credentials.NewMemoryStore())
	defer func() { _ = app.Close() }()

	if app.AuthService == nil || app.ProjectService == nil || app.TaskService == nil ||
		app.NoteService == nil || app.TeamService == nil {
		t.Fatal("Expected every service to be initialized")
	}
	if app.Client.BaseURL() != config.DefaultAPIURL {
		t.Errorf("Client base URL = %s, want %s", app.Client.BaseURL(), config.DefaultAPIURL)
	}
}

func TestServicesShareCacheAndBus(t *testing.T) {
	srv := fakeapi.New(t)
	srv.CreateUser("Ana", "ana@example.com", "secret123")

	cfg := config.Default()
	cfg.APIURL = srv.URL
	app := New(cfg, credentials.NewMemoryStore())
	defer func() { _ = app.Close() }()

	events, cancel := app.Bus.Subscribe(32)
	defer cancel()

	ctx := context.Background()
	if err := app.AuthService.Login(ctx, models.LoginForm{Email: "ana@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := app.ProjectService.ListProjects(ctx); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if _, ok := app.Cache.Peek(query.ProjectsKey()); !ok {
		t.Error("Expected the project list to be cached")
	}

	select {
	case <-events:
	case <-time.After(time.Second):
		t.Error("Expected cache events on the app bus")
	}
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := config.Default()
	cfg.TokenStore = config.TokenStoreMemory

	store, closer, err := OpenStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer func() { _ = closer.Close() }()

	if _, ok := store.(*credentials.MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", store)
	}
}

func TestOpenStore_SQLite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, closer, err := OpenStore(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer func() { _ = closer.Close() }()

	if err := store.Set("token"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if token, ok := store.Token(); !ok || token != "token" {
		t.Errorf("Token() = %q, %v", token, ok)
	}
}
