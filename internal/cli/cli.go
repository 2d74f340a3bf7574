package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/app"
	"github.com/thenoetrevino/uptask/internal/config"
	"github.com/thenoetrevino/uptask/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	owned   bool
	closers []io.Closer
}

type appKey struct{}

// WithApp returns a context carrying an existing App. Commands run with this
// context use it instead of building their own, and Close leaves it open.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns the CLI for a command. An App injected with
// WithApp is reused, otherwise a new one is built from the user's config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	return getCLI(ctx, nil)
}

func getCLI(ctx context.Context, override func(*config.Config)) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	return newCLI(ctx, override)
}

// NewCLI loads the config, opens the log file and the session store, and
// wires the application container.
func NewCLI(ctx context.Context) (*CLI, error) {
	return newCLI(ctx, nil)
}

func newCLI(ctx context.Context, override func(*config.Config)) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if override != nil {
		override(cfg)
	}

	c := &CLI{owned: true}

	logFile, err := logging.Init(cfg.LogLevel)
	if err != nil {
		// Logging is best effort; commands still run without a log file
		logging.Setup(io.Discard, slog.LevelError)
	} else {
		c.closers = append(c.closers, logFile)
	}

	store, storeCloser, err := app.OpenStore(ctx, cfg)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.closers = append(c.closers, storeCloser)

	c.App = app.New(cfg, store, app.WithLogger(slog.Default()))
	return c, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var firstErr error
	if c.owned && c.App != nil {
		firstErr = c.App.Close()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

// RunFunc is the body of a command once the CLI is ready
type RunFunc func(ctx context.Context, c *CLI, f *OutputFormatter) error

// Run opens the CLI for cmd, runs fn and closes the CLI again. An error from
// fn is reported through the formatter and comes back as an *ExitError.
func Run(cmd *cobra.Command, fn RunFunc) error {
	return RunWithConfig(cmd, nil, fn)
}

// RunWithConfig is Run with a hook that adjusts the loaded config before the
// App is built. The hook is not applied to an App injected with WithApp.
func RunWithConfig(cmd *cobra.Command, override func(*config.Config), fn RunFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := NewFormatter(cmd)

	cliInstance, err := getCLI(ctx, override)
	if err != nil {
		return Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if cliInstance.App.Config != nil {
		InitStyles(cliInstance.App.Config.Theme)
	}

	if err := fn(ctx, cliInstance, formatter); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return Fail(formatter, err)
	}
	return nil
}
