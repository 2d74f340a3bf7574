// Package api is the REST client for the UpTask backend. Every method maps
// to one endpoint; reads are checked against the entity schemas before they
// are returned.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/uptask/internal/credentials"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "uptask-cli"
	maxBodyBytes     = 4 << 20
)

// Client talks to one backend
type Client struct {
	baseURL   string
	http      *http.Client
	store     credentials.Store
	logger    *slog.Logger
	userAgent string
	now       func() time.Time
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger for request logging
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for baseURL, reading the bearer token from store
func New(baseURL string, store credentials.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: defaultTimeout},
		store:     store,
		logger:    slog.Default(),
		userAgent: defaultUserAgent,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// endpoint joins escaped path segments
func endpoint(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// token returns the stored token, clearing it first if it has expired
func (c *Client) token() (string, bool) {
	if c.store == nil {
		return "", false
	}
	token, ok := c.store.Token()
	if !ok {
		return "", false
	}
	if credentials.Expired(token, c.now()) {
		c.logger.Info("stored session token has expired, clearing it")
		if err := c.store.Clear(); err != nil {
			c.logger.Warn("failed to clear expired token", "error", err)
		}
		return "", false
	}
	return token, true
}

// do sends one request and returns the body of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body for %s: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"error", err)
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug("request complete",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", c.now().Sub(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.store != nil {
			if err := c.store.Clear(); err != nil {
				c.logger.Warn("failed to clear rejected token", "error", err)
			}
		}
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}
	return respBody, nil
}

// send is do for endpoints that answer with a message
func (c *Client) send(ctx context.Context, method, path string, body any) (string, error) {
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// message reads a body that is either a JSON string or plain text
func message(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// errorMessage reads {"error": "..."} or {"message": "..."} from an error body
func errorMessage(raw []byte) string {
	var body struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if s, ok := body.Error.(string); ok && s != "" {
		return s
	}
	return body.Message
}
