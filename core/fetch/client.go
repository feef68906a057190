// ABOUTME: Rate-limited JSON fetch client for external APIs
// ABOUTME: Maps 404 to NotFoundError and other non-2xx statuses to ExternalAPIError

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sync"

	"golang.org/x/time/rate"

	coreerrors "mlcatalog-api/core/errors"
	"mlcatalog-api/core/interfaces"
)

// Client issues JSON GET requests against external APIs. It paces requests
// with a per-host token bucket and attaches a bearer token when one is
// configured for the host. A 404 is a normal outcome surfaced as a
// NotFoundError; the caller decides whether that matters.
//
// The client performs no retries and enforces no timeout of its own; callers
// needing bounded latency wrap calls with a context deadline.
type Client struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	tokens   map[string]string
	rates    map[string]rate.Limit
	bursts   map[string]int
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token used for all requests to the given host.
func WithToken(host, token string) Option {
	return func(c *Client) {
		if token != "" {
			c.tokens[host] = token
		}
	}
}

// WithRateLimit bounds the request rate against the given host.
func WithRateLimit(host string, limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.rates[host] = limit
		c.bursts[host] = burst
	}
}

// NewClient creates a fetch client on top of the injected HTTP client.
// Hosts without an explicit rate limit are not paced.
func NewClient(httpClient interfaces.HTTPClient, logger interfaces.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		logger:     logger,
		limiters:   make(map[string]*rate.Limiter),
		tokens:     make(map[string]string),
		rates:      make(map[string]rate.Limit),
		bursts:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON performs a rate-limited GET against rawURL and unmarshals the
// response body into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v interface{}) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "invalid request URL"}
	}
	host := parsed.Host

	if err := c.limiter(host).Wait(ctx); err != nil {
		return err
	}

	headers := map[string]string{"Accept": "application/json"}
	if token, ok := c.tokenFor(host); ok {
		headers["Authorization"] = "Bearer " + token
	}

	resp, err := c.httpClient.GetWithHeaders(ctx, rawURL, headers)
	if err != nil {
		return coreerrors.WrapError(err, "request to "+host+" failed")
	}
	defer resp.Body().Close()

	switch {
	case resp.StatusCode() == 404:
		return &coreerrors.NotFoundError{Resource: host, ID: parsed.Path}
	case resp.StatusCode() < 200 || resp.StatusCode() > 299:
		msg := readErrorMessage(resp.Body())
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    msg,
			API:        host,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return coreerrors.WrapError(err, "failed to read response from "+host)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return coreerrors.WrapError(err, "failed to decode response from "+host)
	}
	return nil
}

// limiter returns the token bucket for a host, creating it on first use.
func (c *Client) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.limiters[host]; ok {
		return l
	}

	limit, ok := c.rates[host]
	if !ok {
		limit = rate.Inf
	}
	burst := c.bursts[host]
	if burst <= 0 {
		burst = 1
	}

	l := rate.NewLimiter(limit, burst)
	c.limiters[host] = l
	return l
}

func (c *Client) tokenFor(host string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	token, ok := c.tokens[host]
	return token, ok
}

// readErrorMessage extracts a short message from an error response body.
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil || len(data) == 0 {
		return "no response body"
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("%.200s", string(data))
}
