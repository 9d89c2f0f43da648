// Package api implements the HTTP client for the KOVA backend. One client
// is configured per process, bound to a fixed base origin; it attaches the
// bearer credential to every request when one is present and observes every
// response for authorization failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the backend origin used when config provides none.
const DefaultBaseURL = "http://127.0.0.1:8000"

// TokenSource supplies the current bearer credential; "" means anonymous.
type TokenSource interface {
	Token() string
}

// HTTPClient abstracts the transport for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the backend API.
type Client struct {
	baseURL string
	http    HTTPClient
	tokens  TokenSource

	mu             sync.Mutex
	onUnauthorized func()
}

// New creates a client bound to baseURL. Empty baseURL falls back to
// DefaultBaseURL; a trailing slash is stripped.
func New(baseURL string, tokens TokenSource) *Client {
	return NewWithHTTPClient(baseURL, tokens, &http.Client{})
}

// NewWithHTTPClient creates a client with an explicit transport.
func NewWithHTTPClient(baseURL string, tokens TokenSource, hc HTTPClient) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{baseURL: baseURL, http: hc, tokens: tokens}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// OnUnauthorized registers the hook invoked once per 401 response,
// regardless of which endpoint produced it.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// APIError is a backend-reported failure, carrying the structured detail
// field when the backend supplied one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// do issues a JSON request. body and out may be nil; query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send applies auth headers, executes the request, and decodes the
// response or the backend error detail.
func (c *Client) send(req *http.Request, out any) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// handleUnauthorized fires the registered hook. The hook runs once per 401
// response; the session it clears is idempotent, so overlapping 401s from
// concurrent requests cannot loop.
func (c *Client) handleUnauthorized() {
	c.mu.Lock()
	fn := c.onUnauthorized
	c.mu.Unlock()

	log.Debug().Msg("api: unauthorized response, invalidating session")
	if fn != nil {
		fn()
	}
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Detail) > 0 {
		// FastAPI emits either a plain string or a structured list;
		// surface the string form, fall back to the raw text otherwise.
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			apiErr.Detail = detail
		} else {
			apiErr.Detail = string(payload.Detail)
		}
	}
	return apiErr
}
