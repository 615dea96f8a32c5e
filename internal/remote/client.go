// Package remote is the client for the shared JSON-document store that
// hosts the question-bank configuration. It wraps a handful of HTTP
// calls (read latest, update, snapshot versions, metadata) with request
// timeouts, exponential-backoff retry and pre-write validation. The
// store itself is an external collaborator; nothing here interprets the
// document beyond its wire shape.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/harrison/podassess/internal/models"
)

const (
	defaultBaseURL = "https://api.jsonbin.io/v3"
	defaultTimeout = 10 * time.Second
	defaultRetries = 3

	// maxBackoff caps the exponential retry delay.
	maxBackoff = 5 * time.Second

	headerKey         = "X-Master-Key"
	headerVersioning  = "X-Bin-Versioning"
	headerVersionName = "X-Bin-Version-Name"
)

// Client talks to one bin of the document store. Construct with
// NewClient; the zero value is not usable.
type Client struct {
	binID      string
	apiKey     string
	baseURL    string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the store endpoint, typically for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout. Non-positive durations keep
// the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries sets how many attempts each operation makes. Values below
// one keep the default.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 1 {
			c.maxRetries = n
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a store client for the given bin and access key.
func NewClient(binID, apiKey string, opts ...Option) *Client {
	c := &Client{
		binID:      binID,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		maxRetries: defaultRetries,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// recordEnvelope is the store's response wrapper around a stored document.
type recordEnvelope struct {
	Record models.Document `json:"record"`
}

// Version describes one stored snapshot of the bin.
type Version struct {
	ID      json.Number `json:"id"`
	Name    string      `json:"name,omitempty"`
	Created string      `json:"created,omitempty"`
}

// BinMeta is the store-side metadata for the bin.
type BinMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Private   bool   `json:"private"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Read fetches the latest document, retrying transient failures.
func (c *Client) Read(ctx context.Context) (*models.Document, error) {
	var env recordEnvelope
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, c.binURL("/latest"), nil, nil, &env)
	})
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return &env.Record, nil
}

// FetchLatest implements the loader's DocumentFetcher contract.
func (c *Client) FetchLatest(ctx context.Context) (*models.Document, error) {
	return c.Read(ctx)
}

// Update overwrites the current document in place (no new version).
// The document is validated (structure, schema, size cap) before any
// bytes go out.
func (c *Client) Update(ctx context.Context, doc *models.Document) error {
	body, err := marshalForWrite(doc)
	if err != nil {
		return err
	}
	headers := map[string]string{headerVersioning: "false"}
	err = c.withRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, c.binURL(""), headers, body, nil)
	})
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// CreateVersion stores the document as a new named snapshot.
func (c *Client) CreateVersion(ctx context.Context, doc *models.Document, name string) error {
	body, err := marshalForWrite(doc)
	if err != nil {
		return err
	}
	headers := map[string]string{headerVersioning: "true"}
	if name != "" {
		headers[headerVersionName] = name
	}
	err = c.withRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, c.binURL(""), headers, body, nil)
	})
	if err != nil {
		return fmt.Errorf("create version: %w", err)
	}
	return nil
}

// ListVersions returns the stored snapshots, oldest first as served.
func (c *Client) ListVersions(ctx context.Context) ([]Version, error) {
	var out struct {
		Versions []Version `json:"versions"`
	}
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, c.binURL("/versions"), nil, nil, &out)
	})
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return out.Versions, nil
}

// ReadVersion fetches one specific snapshot by id.
func (c *Client) ReadVersion(ctx context.Context, versionID string) (*models.Document, error) {
	var env recordEnvelope
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, c.binURL("/versions/"+versionID), nil, nil, &env)
	})
	if err != nil {
		return nil, fmt.Errorf("read version %s: %w", versionID, err)
	}
	return &env.Record, nil
}

// Meta fetches the bin metadata.
func (c *Client) Meta(ctx context.Context) (*BinMeta, error) {
	var out struct {
		Metadata BinMeta `json:"metadata"`
	}
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, c.binURL("/meta"), nil, nil, &out)
	})
	if err != nil {
		return nil, fmt.Errorf("bin metadata: %w", err)
	}
	return &out.Metadata, nil
}

// ConnectionStatus reports the outcome of a connectivity probe.
type ConnectionStatus struct {
	OK         bool
	StatusCode int
	Err        error
}

// TestConnection probes the bin metadata endpoint once, without retry,
// and reports reachability rather than returning an error.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	err := c.do(ctx, http.MethodGet, c.binURL("/meta"), nil, nil, nil)
	if err == nil {
		return ConnectionStatus{OK: true, StatusCode: http.StatusOK}
	}
	status := ConnectionStatus{Err: err}
	var se *StatusError
	if errors.As(err, &se) {
		status.StatusCode = se.Code
	}
	return status
}

func (c *Client) binURL(suffix string) string {
	return fmt.Sprintf("%s/b/%s%s", c.baseURL, c.binID, suffix)
}

// do performs one HTTP exchange under the per-request timeout. A non-2xx
// response becomes a *StatusError carrying the response body.
func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set(headerKey, c.apiKey)
	req.Header.Set("Cache-Control", "no-cache")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// withRetry runs op up to maxRetries times with exponential backoff
// (1s, 2s, 4s, capped at 5s). Client errors other than 429 are not
// retried; neither is a cancelled context.
func (c *Client) withRetry(ctx context.Context, op func(context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) || attempt == c.maxRetries {
			return lastErr
		}

		delay := time.Duration(1<<(attempt-1)) * time.Second
		if delay > maxBackoff {
			delay = maxBackoff
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}

// retryable reports whether an error is worth another attempt: network
// failures, timeouts, 429 and server-side statuses qualify; other client
// errors (bad key, missing bin) never resolve by retrying.
func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests || se.Code >= 500
	}
	return true
}
