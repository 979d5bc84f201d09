// Package client talks to the SkillSwap backend: auth, name lookups and the
// community question feed. All failures surface as errors at this boundary;
// callers re-render only after a call fully succeeds.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrEmptyText rejects empty or whitespace-only submissions before any
	// network call is made.
	ErrEmptyText = errors.New("text must not be empty")
	// ErrSubmitInFlight suppresses a duplicate submission while the prior
	// one is still pending.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// APIError is a backend-rejected request. Message carries the backend's own
// message when it sent one, so it can be shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", e.Message, e.Status)
}

// Client provides access to the SkillSwap HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	// lookupLimiter paces the per-reply name lookups so a large feed
	// cannot stampede the backend.
	lookupLimiter     *rate.Limiter
	lookupConcurrency int
	logger            *slog.Logger

	questionInFlight inFlightFlag
	replyInFlight    inFlightFlag
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithLookupConcurrency bounds the name-resolution fan-out per feed load.
func WithLookupConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.lookupConcurrency = n
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		lookupLimiter:     rate.NewLimiter(rate.Every(10*time.Millisecond), 20),
		lookupConcurrency: 8,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one JSON exchange. Non-2xx responses become *APIError with
// the backend's message when present, a generic one otherwise.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode, Message: "server error"}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("malformed payload from %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}
