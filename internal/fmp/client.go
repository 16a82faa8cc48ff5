// Package fmp is a thin client for the Financial Modeling Prep stable API.
// Every method forwards one GET request and returns the raw JSON payload;
// response shaping is left to the caller.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/metrics"
)

// DefaultBaseURL is the production endpoint of the FMP stable API.
const DefaultBaseURL = "https://financialmodelingprep.com/stable"

const (
	defaultTimeout       = 30 * time.Second
	defaultRetryInterval = 500 * time.Millisecond
	defaultMaxAttempts   = 4

	// maxResponseBody caps how much of an upstream response is read.
	maxResponseBody = 8 << 20

	// errorBodyLimit caps how much of an error response is kept for the
	// APIError message.
	errorBodyLimit = 512
)

// Client calls the FMP API with a fixed access token. A Client with an empty
// token is valid to construct; every call fails with ErrMissingAPIKey before
// any network I/O.
type Client struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	logger        *slog.Logger
	metrics       *metrics.Recorder
	maxAttempts   uint
	retryInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, for tests and proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(c *Client) {
		c.metrics = rec
	}
}

// WithMaxRetries sets how many times a retryable failure is reattempted.
func WithMaxRetries(n uint) Option {
	return func(c *Client) {
		c.maxAttempts = n + 1
	}
}

// WithRetryInterval sets the initial backoff delay between attempts.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.retryInterval = d
		}
	}
}

// New constructs a Client for the given access token. An empty token is
// permitted; see Client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:       DefaultBaseURL,
		apiKey:        apiKey,
		httpClient:    &http.Client{Timeout: defaultTimeout},
		logger:        slog.Default().With("component", "fmp"),
		maxAttempts:   defaultMaxAttempts,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasKey reports whether the client carries an access token.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// get performs one API request with retries on 429 and 5xx responses.
// The access token travels as the apikey query parameter and is never
// logged.
func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("building request URL for %s: %w", path, err)
	}
	q := u.Query()
	for key, vals := range query {
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryInterval
	expBackoff.MaxInterval = 20 * c.retryInterval
	expBackoff.Reset()

	operation := func() (json.RawMessage, error) {
		return c.doRequest(ctx, u.String())
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(c.maxAttempts),
		backoff.WithNotify(func(err error, delay time.Duration) {
			c.logger.Debug("retrying FMP request",
				"path", path,
				"delay", delay,
				"error", err)
		}),
	)
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamRequest("error", time.Since(start))
		return nil, fmt.Errorf("FMP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	c.metrics.UpstreamRequest(strconv.Itoa(resp.StatusCode), time.Since(start))
	if readErr != nil {
		return nil, fmt.Errorf("reading FMP response: %w", readErr)
	}

	if resp.StatusCode == http.StatusOK {
		return json.RawMessage(body), nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       truncateBody(body),
	}
	if retryableStatus(resp.StatusCode) {
		return nil, apiErr
	}
	return nil, backoff.Permanent(apiErr)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > errorBodyLimit {
		return s[:errorBodyLimit] + "..."
	}
	return s
}

// setIfSet adds a query parameter only when the value is non-empty.
func setIfSet(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setIfPositive adds an integer query parameter only when it is positive.
func setIfPositive(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
