// Package openalex provides a client for the OpenAlex API with retry logic,
// identifier normalization, and typed error handling.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the OpenAlex API base URL.
	DefaultBaseURL = "https://api.openalex.org"

	// RequestsPerSecond is the OpenAlex rate limit (10 req/s per API policy).
	RequestsPerSecond = 10

	// DefaultMaxRetries is the number of retries for rate-limited requests.
	DefaultMaxRetries = 3

	// DefaultMaxRetryWait caps the exponential backoff between retries.
	DefaultMaxRetryWait = 60 * time.Second

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResponseBytes is the maximum response body size (50 MB).
	DefaultMaxResponseBytes int64 = 50 * 1024 * 1024

	userAgent = "openalexq/0.1.0 (https://github.com/openalexq/openalexq)"
)

// Client is a rate-limited HTTP client for the OpenAlex API. The underlying
// HTTP transport is created lazily on first use and released by Close.
type Client struct {
	BaseURL      string
	Email        string // polite pool contact, sent as mailto
	MaxRetries   int
	MaxRetryWait time.Duration
	MaxBytes     int64
	Limiter      *rate.Limiter
	Notifier     Notifier

	httpClient *http.Client
	ownsClient bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for requests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = u }
}

// WithEmail sets the polite-pool contact email appended to every request.
func WithEmail(email string) Option {
	return func(c *Client) { c.Email = email }
}

// WithMaxRetries sets the retry budget for rate-limited and failed requests.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.MaxRetries = n }
}

// WithMaxRetryWait caps the backoff wait between retries.
func WithMaxRetryWait(d time.Duration) Option {
	return func(c *Client) { c.MaxRetryWait = d }
}

// WithHTTPClient sets a custom HTTP client. Close will not release it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNotifier sets the sink for retry status messages.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.Notifier = n }
}

// WithMaxResponseBytes sets the maximum allowed response body size.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) { c.MaxBytes = n }
}

// NewClient creates a new OpenAlex client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL:      DefaultBaseURL,
		MaxRetries:   DefaultMaxRetries,
		MaxRetryWait: DefaultMaxRetryWait,
		MaxBytes:     DefaultMaxResponseBytes,
		Limiter:      rate.NewLimiter(rate.Limit(RequestsPerSecond), 1),
		Notifier:     TerminalNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// client returns the HTTP client, creating it on first use.
func (c *Client) client() *http.Client {
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
		c.ownsClient = true
	}
	return c.httpClient
}

// Close releases the underlying transport. Safe to call more than once and
// on clients that never issued a request.
func (c *Client) Close() {
	if c.httpClient != nil && c.ownsClient {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
		c.ownsClient = false
	}
}

func (c *Client) notify(message string) {
	if c.Notifier != nil {
		c.Notifier.Notify(message)
	}
}

// doGet performs a rate-limited GET with retry on HTTP 429 and transport
// faults. 404, 400 and other non-2xx statuses fail immediately with a typed
// *APIError. The polite-pool mailto parameter is injected once per request.
func (c *Client) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if c.Email != "" {
		params.Set("mailto", c.Email)
	}

	u, err := url.JoinPath(c.BaseURL, path)
	if err != nil {
		return nil, fmt.Errorf("building URL: %w", err)
	}
	fullURL := u + "?" + params.Encode()

	var lastErr error

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.client().Do(req)
		if err != nil {
			lastErr = err
			if attempt < c.MaxRetries {
				wait := backoffWait(attempt, c.MaxRetryWait)
				c.notify(fmt.Sprintf("Connection error. Retry %d/%d in %ds...",
					attempt+1, c.MaxRetries, int(wait.Seconds())))
				if err := sleepWithContext(ctx, wait); err != nil {
					return nil, fmt.Errorf("retry canceled: %w", err)
				}
				continue
			}
			return nil, connectionError(err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err := c.readBody(resp)
			if err != nil {
				return nil, err
			}
			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			retryAfter, known := retryAfterSeconds(resp.Header.Get("Retry-After"))
			drain(resp)

			if attempt >= c.MaxRetries {
				return nil, rateLimitError(retryAfter)
			}

			base := time.Duration(retryAfter) * time.Second
			if !known {
				base = backoffWait(attempt, c.MaxRetryWait)
			}
			wait := jitter(base)
			resume := time.Now().Add(wait).Format("15:04:05")
			c.notify(fmt.Sprintf("Rate limited. Retry %d/%d in %ds (at %s)...",
				attempt+1, c.MaxRetries, int(wait.Seconds()), resume))
			if err := sleepWithContext(ctx, wait); err != nil {
				return nil, fmt.Errorf("rate limit retry canceled: %w", err)
			}
			continue

		case resp.StatusCode == http.StatusNotFound:
			drain(resp)
			return nil, notFoundError()

		case resp.StatusCode == http.StatusBadRequest:
			body, _ := c.readBody(resp)
			return nil, badRequestError(errorMessage(body))

		default:
			code := resp.StatusCode
			drain(resp)
			return nil, statusError(code)
		}
	}

	// Unreachable given the cases above, but the loop must not fall through
	// silently.
	return nil, &APIError{
		Message: fmt.Sprintf("Request failed after %d retries", c.MaxRetries),
		cause:   lastErr,
	}
}

// getJSON performs doGet and decodes the response body into v.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	body, err := c.doGet(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// readBody reads the response body with the configured size guard.
func (c *Client) readBody(resp *http.Response) ([]byte, error) {
	r := io.LimitReader(resp.Body, c.MaxBytes+1)
	body, err := io.ReadAll(r)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > c.MaxBytes {
		return nil, fmt.Errorf("response exceeds maximum size of %d bytes", c.MaxBytes)
	}
	return body, nil
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// errorMessage extracts the message field from an error response body.
func errorMessage(body []byte) string {
	var data struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	return data.Message
}

// backoffWait computes the exponential backoff for the given attempt,
// capped at max: 1s, 2s, 4s, 8s, ...
func backoffWait(attempt int, max time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * time.Second
	if wait > max || wait <= 0 {
		return max
	}
	return wait
}

// jitter perturbs a wait by a uniform ±25% so that independent CLI
// invocations sharing a rate-limit window do not retry in lockstep.
func jitter(d time.Duration) time.Duration {
	return time.Duration(float64(d) * (0.75 + rand.Float64()*0.5))
}

// retryAfterSeconds parses a Retry-After header value. The second return
// reports whether the server supplied a usable value.
func retryAfterSeconds(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(v); err == nil {
		if secs > 0 {
			return secs, true
		}
		return 0, false
	}

	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return int(d.Seconds()) + 1, true
		}
	}

	return 0, false
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
