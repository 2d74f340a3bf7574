package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	httpClient *http.Client
	bus        *events.Bus
	logger     *slog.Logger
}

// WithHTTPClient replaces the HTTP client built from the config timeout
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}

// WithEventBus shares an existing bus instead of creating one
func WithEventBus(bus *events.Bus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
