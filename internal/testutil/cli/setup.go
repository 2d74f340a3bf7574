// Package cli holds helpers for command tests. It is separate from testutil
// to avoid import cycles when service tests import testutil.
package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/app"
	uptaskcli "github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/config"
	"github.com/thenoetrevino/uptask/internal/credentials"
	"github.com/thenoetrevino/uptask/internal/logging"
	"github.com/thenoetrevino/uptask/internal/testutil"
	"github.com/thenoetrevino/uptask/internal/testutil/fakeapi"
)

// Env is one logged in user talking to a fake backend through an App
type Env struct {
	Server  *fakeapi.Server
	Session *testutil.Session
	App     *app.App
}

// SetupCLITest starts a fake backend and builds an App signed in as "alice"
func SetupCLITest(t *testing.T) *Env {
	t.Helper()

	srv := fakeapi.New(t)
	sess := testutil.NewSession(t, srv, "alice")
	return &Env{Server: srv, Session: sess, App: NewApp(t, srv, sess)}
}

// NewApp builds an App for sess against srv
func NewApp(t *testing.T, srv *fakeapi.Server, sess *testutil.Session) *app.App {
	t.Helper()
	return newApp(t, srv, sess.Store)
}

// NewAnonymousApp builds an App against srv with an empty token store
func NewAnonymousApp(t *testing.T, srv *fakeapi.Server) (*app.App, *credentials.MemoryStore) {
	t.Helper()
	store := credentials.NewMemoryStore()
	return newApp(t, srv, store), store
}

func newApp(t *testing.T, srv *fakeapi.Server, store credentials.Store) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.APIURL = srv.URL
	cfg.TokenStore = config.TokenStoreMemory

	a := app.New(cfg, store, app.WithLogger(logging.Discard()))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// Result is the captured output of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode is the code main would exit with
func (r Result) ExitCode() int {
	return uptaskcli.CommandExitCode(r.Err)
}

// ExecuteCLICommand runs cmd with args against testApp and returns stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res := Execute(t, testApp, cmd, args)
	return res.Stdout, res.Err
}

// Execute runs cmd with args against testApp and captures both streams
func Execute(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := uptaskcli.WithApp(context.Background(), testApp)
	cmd.SetContext(ctx)
	testutil.SetupCobraCommand(cmd, args)

	stdout, stderr, err := testutil.ExecuteCommand(t, cmd)
	return Result{Stdout: stdout, Stderr: stderr, Err: err}
}
