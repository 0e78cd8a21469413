package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors for HTTP outcomes. Callers use errors.Is to distinguish a
// missing resource (a broken documentation link) from transport-level trouble.
var (
	// ErrNotFound indicates the server answered 404 for the requested URL.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork indicates a transport failure or an unexpected status code.
	ErrNetwork = errors.New("network error")
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// Client performs the blocking HTTP calls made during a render: fetching the
// root context document and checking that documentation URLs exist.
type Client struct {
	http *http.Client
}

// NewClient creates a Client with the given request timeout.
// A non-positive timeout falls back to [DefaultTimeout].
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// SetHTTPClient replaces the underlying HTTP client. Tests use this to point
// the Client at an httptest server.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// GetJSON performs a GET request and JSON-decodes the response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// Check performs a GET request and reports whether the URL exists.
// The response body is discarded; only the status matters. Check satisfies
// the link checker interface of the docref package.
func (c *Client) Check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	resp.Body.Close()
	return checkStatus(resp.StatusCode)
}

// checkStatus maps an HTTP status code to a sentinel error.
// Redirects are followed by the underlying client, so anything outside the
// 2xx range that is not a 404 is treated as a network-level failure.
func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
