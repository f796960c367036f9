package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
	"github.com/skibidoo/storefront/pkg/logger"
	"github.com/skibidoo/storefront/pkg/metrics"
)

const (
	defaultTimeout           = 10 * time.Second
	errorBodyReadLimit int64 = 4096
)

var errBaseURLRequired = errors.New("backend base url is required")

// Client talks to the commerce backend's flat JSON API. Read operations
// degrade to empty values and log; write operations return errors.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logg       *logger.Logger
	metrics    *metrics.BackendMetrics
	cache      Cache
	cacheTTL   time.Duration
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default instrumented HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithMetrics records request duration and failures.
func WithMetrics(m *metrics.BackendMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithCache enables read-through caching of catalog reads.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		if cache != nil && ttl > 0 {
			c.cache = cache
			c.cacheTTL = ttl
		}
	}
}

// NewClient builds a backend client rooted at baseURL, e.g. http://localhost:3000.
func NewClient(baseURL string, logg *logger.Logger, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, err
	}

	client := &Client{
		baseURL: trimmed,
		logg:    logg,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// do performs one JSON request. body is encoded when non-nil; out is decoded
// from 2xx responses when non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, op, method, path, query, body, out)
	c.metrics.ObserveDuration(op, time.Since(start))
	if err != nil && !IsNotFound(err) {
		c.metrics.IncFailure(op)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal "+op+" request")
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build "+op+" request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute "+op+" request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return newRejection(op, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode "+op+" response")
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// degraded logs a read failure that is being swallowed.
func (c *Client) degraded(ctx context.Context, op string, err error) {
	if c.logg == nil {
		return
	}
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"op":    op,
		"error": err.Error(),
	})
	c.logg.Warn(logCtx, "backend.read.degraded")
}
