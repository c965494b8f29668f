// Package blockscout provides the HTTP adapter for a BlockScout v2 API.
// Every tool call maps to exactly one GET against the configured base URL;
// the client classifies failures but never reshapes response bodies.
package blockscout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/duckchain-io/duckscan-mcp/internal/common"
)

// maxResponseSize caps the response body to prevent OOM from unexpectedly
// large responses.
const maxResponseSize = 50 << 20 // 50MB

// DefaultBaseURL is the BlockScout instance used when none is configured.
const DefaultBaseURL = "https://scan.duckchain.io/api/v2"

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Config holds the immutable connection settings for a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Validate checks that the base URL is an absolute http(s) URL and the
// timeout is positive.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Client issues GET requests against a BlockScout API. The configuration is
// fixed at construction, so concurrent calls are independent and safe.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *common.Logger
}

// New creates a Client from cfg. Zero-value BaseURL and Timeout fall back
// to the package defaults before validation.
func New(cfg Config, logger *common.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get performs one GET against path (joined with the base URL) and returns
// the raw JSON body. Query parameters with empty values are omitted. The
// returned body is verified to be valid JSON but otherwise untouched.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	reqURL := c.buildURL(path, query)

	c.logger.Debug().Str("method", "GET").Str("url", reqURL).Msg("upstream request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		classified := c.classifyTransportError(err)
		c.logger.Error().Err(classified).Str("url", reqURL).Int64("duration_ms", duration.Milliseconds()).Msg("upstream request failed")
		return nil, classified
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		classified := c.classifyTransportError(err)
		c.logger.Error().Err(classified).Str("url", reqURL).Msg("failed to read upstream response")
		return nil, classified
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Int("bytes", len(body)).Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindUpstream, Status: resp.StatusCode, Body: body}
	}

	if !json.Valid(body) {
		return nil, &Error{Kind: KindMalformed}
	}

	return json.RawMessage(body), nil
}

// buildURL joins path with the base URL and appends non-empty query values.
func (c *Client) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	reqURL := c.baseURL + path

	if len(query) == 0 {
		return reqURL
	}
	filtered := url.Values{}
	for key, vals := range query {
		for _, v := range vals {
			if v != "" {
				filtered.Add(key, v)
			}
		}
	}
	if len(filtered) == 0 {
		return reqURL
	}
	return reqURL + "?" + filtered.Encode()
}

// classifyTransportError maps a transport-level failure to a Timeout or
// ConnectionFailure error.
func (c *Client) classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Timeout: c.timeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Timeout: c.timeout, Err: err}
	}
	return &Error{Kind: KindConnection, Err: err}
}
