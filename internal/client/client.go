// Package client is the data-access layer between UI code and the content
// API: typed accessors with keyed read caching, staleness windows, and a
// centrally declared invalidation fan-out. Consistency after a mutation is
// invalidate-then-refetch; cached values are never patched in place.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IMohy/portfolio-imohy/internal/api/auth"
)

// APIError carries the status and error envelope of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   *memoryCache

	staleTime     time.Duration
	snapshotStale time.Duration
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithStaleTime sets the staleness window for per-kind reads.
func WithStaleTime(d time.Duration) Option {
	return func(c *Client) { c.staleTime = d }
}

// WithSnapshotStaleTime sets the staleness window for the aggregate
// portfolio read and the dashboard stats.
func WithSnapshotStaleTime(d time.Duration) Option {
	return func(c *Client) { c.snapshotStale = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          &http.Client{Timeout: 15 * time.Second},
		cache:         newMemoryCache(),
		staleTime:     30 * time.Second,
		snapshotStale: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sessionTokenKey struct{}

// WithSession attaches a session token to the context so mutation calls
// authenticate as the admin.
func WithSession(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

func sessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey{}).(string)
	return token
}

// Invalidate drops the cached entries for a key, its detail entries, and
// its declared dependents.
func (c *Client) Invalidate(key Key) {
	c.cache.invalidate(append([]Key{key}, dependents[key]...)...)
}

func (c *Client) cached(key string, staleTime time.Duration) (interface{}, bool) {
	return c.cache.get(key, staleTime)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := sessionToken(ctx); token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = http.StatusText(res.StatusCode)
		}
		return &APIError{Status: res.StatusCode, Message: envelope.Error}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}
