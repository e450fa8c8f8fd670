package host

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Error categories for failed HTTP fetches.
const (
	CategoryAuthError       = "auth_error"
	CategoryForbidden       = "forbidden"
	CategoryNotFound        = "not_found"
	CategoryRateLimited     = "rate_limited"
	CategoryServerError     = "server_error"
	CategoryValidationError = "validation_error"
	CategoryTransport       = "transport"
)

// RequestError is the structured failure of an outbound HTTP fetch.
// Retryable categories (rate_limited, server_error, transport) carry
// IsRetryable=true; the capability has already exhausted its retry budget
// by the time the caller sees one.
type RequestError struct {
	StatusCode  int
	URL         string
	Body        string
	Category    string
	IsRetryable bool
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("http request to %s failed: %d (%s)", e.URL, e.StatusCode, e.Category)
	}
	return fmt.Sprintf("http request to %s failed: %s", e.URL, e.Category)
}

// HTTPConfig tunes the http capability.
type HTTPConfig struct {
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBodyBytes   int64
}

// DefaultHTTPConfig returns the built-in http capability defaults.
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Timeout:        30 * time.Second,
		MaxRetries:     2,
		InitialBackoff: 500 * time.Millisecond,
		MaxBodyBytes:   8 << 20, // 8 MiB
	}
}

// Request describes an outbound fetch.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
}

// Response is a completed fetch (2xx only; everything else is a RequestError).
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// JSONBody decodes nothing; plugins decode with encoding/json themselves.
// Kept as raw bytes so the capability stays codec-agnostic.

// HTTPCapability performs outbound HTTP with a retry policy and structured
// failures. Plugins granted http must still go through this capability; the
// loader's static scan refuses direct net/http imports in plugin source.
type HTTPCapability struct {
	client  *http.Client
	cfg     *HTTPConfig
	log     *slog.Logger
	sleepFn func(time.Duration) // test hook
}

func newHTTPCapability(cfg *HTTPConfig, log *slog.Logger) *HTTPCapability {
	if cfg == nil {
		cfg = DefaultHTTPConfig()
	}
	return &HTTPCapability{
		client:  &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		log:     log,
		sleepFn: time.Sleep,
	}
}

// Fetch performs the request, retrying retryable failures with exponential
// backoff. Returns a *RequestError after the retry budget is exhausted or on
// a non-retryable failure.
func (c *HTTPCapability) Fetch(ctx context.Context, req Request) (*Response, error) {
	target, err := buildURL(req)
	if err != nil {
		return nil, &RequestError{URL: req.URL, Category: CategoryValidationError}
	}

	backoff := c.cfg.InitialBackoff
	var lastErr *RequestError
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			c.sleepFn(backoff)
			backoff *= 2
		}

		resp, reqErr := c.doOnce(ctx, req.Method, target, req.Headers, req.Body)
		if reqErr == nil {
			return resp, nil
		}
		lastErr = reqErr
		if !reqErr.IsRetryable {
			break
		}
		c.log.Warn("Retryable HTTP failure",
			"url", target, "status", reqErr.StatusCode,
			"category", reqErr.Category, "attempt", attempt+1)
	}
	return nil, lastErr
}

func (c *HTTPCapability) doOnce(ctx context.Context, method, target string, headers map[string]string, body []byte) (*Response, *RequestError) {
	if method == "" {
		method = http.MethodGet
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &RequestError{URL: target, Category: CategoryValidationError}
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &RequestError{URL: target, Category: CategoryTransport, IsRetryable: true}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, c.cfg.MaxBodyBytes))
	if err != nil {
		return nil, &RequestError{URL: target, Category: CategoryTransport, IsRetryable: true}
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return &Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       data,
		}, nil
	}

	category, retryable := categorize(httpResp.StatusCode)
	return nil, &RequestError{
		StatusCode:  httpResp.StatusCode,
		URL:         target,
		Body:        string(data),
		Category:    category,
		IsRetryable: retryable,
	}
}

func categorize(status int) (string, bool) {
	switch {
	case status == http.StatusUnauthorized:
		return CategoryAuthError, false
	case status == http.StatusForbidden:
		return CategoryForbidden, false
	case status == http.StatusNotFound:
		return CategoryNotFound, false
	case status == http.StatusTooManyRequests:
		return CategoryRateLimited, true
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return CategoryValidationError, false
	case status >= 500:
		return CategoryServerError, true
	default:
		return CategoryValidationError, false
	}
}

func buildURL(req Request) (string, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
