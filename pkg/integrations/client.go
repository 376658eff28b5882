package integrations

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/ghcount/pkg/errors"
	"github.com/matzehuels/ghcount/pkg/observability"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 16 << 20

// Response is a fully read HTTP response. The status code is informational;
// callers decide success from the body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client issues single GET requests with a fixed set of headers.
// It never retries and never caches.
type Client struct {
	http      *http.Client
	headers   map[string]string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client that attaches headers to every request.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		headers: headers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Headers returns the headers attached to every request.
func (c *Client) Headers() map[string]string { return c.headers }

// Get performs one HTTP GET against rawURL and reads the whole body.
// Transport failures are returned as NETWORK_ERROR; any HTTP status,
// including 4xx and 5xx, is returned as a Response.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	host, path := splitURL(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "GET %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read response %s", path)
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func splitURL(u *url.URL) (host, path string) {
	return u.Host, u.EscapedPath()
}
