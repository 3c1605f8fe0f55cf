// Package api is the HTTP client for the financial assistant backend.
//
// Every public call wraps the backend endpoint in the same envelope
// discipline: a bounded fetch (per-attempt timeout, bounded retries), one
// normalized error message per failure, and a finassist.Result as the only
// outcome. Nothing in this package panics or leaks a raw error past a
// service function.
package api

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is used when neither the flag nor the environment
	// provides a backend address.
	DefaultBaseURL = "http://localhost:8000"

	// EnvBaseURL is the environment variable naming the backend address.
	EnvBaseURL = "FINASSIST_API_URL"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 2
)

// Client talks to one backend instance. The logger is explicit
// configuration: callers decide where request logs go, there is no
// package-level log state.
type Client struct {
	baseURL    string
	httpc      *http.Client
	log        *slog.Logger
	timeout    time.Duration
	maxRetries int
}

// Option tweaks a Client at construction.
type Option func(*Client)

// WithHTTPClient substitutes the transport, mostly for tests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger routes the client's request logs.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout overrides the per-attempt deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMaxRetries overrides the retry bound (retries, not attempts).
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// New creates a client for the given base URL. An empty baseURL falls back
// to the EnvBaseURL variable, then to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpc:      &http.Client{},
		log:        slog.Default(),
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved backend address.
func (c *Client) BaseURL() string { return c.baseURL }
