// Package httpx issues requests against the FMP REST API. It owns the
// URL layout, authentication, client-side rate limiting, and decoding of
// responses including FMP's error envelope.
package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/casualjim/fmp/pkg/slogx"
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Version selects the FMP API generation an endpoint lives in.
type Version string

const (
	V3     Version = "v3"
	V4     Version = "v4"
	Stable Version = "stable"
)

const (
	DefaultBaseURL   = "https://financialmodelingprep.com"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "fmp-go/1.0"

	maxErrorBody = 512
)

// Config configures the HTTP client.
type Config struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// RequestsPerMinute enables client-side rate limiting when positive.
	RequestsPerMinute int
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Client performs authenticated GET requests.
type Client struct {
	apiKey    string
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// New creates a client, filling unset fields of cfg with defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      hc,
		limiter:   limiter,
		logger:    logger.With(slogx.LoggerName("fmp.http")),
	}
}

// Get requests endpoint in the given API version and decodes the JSON body into out.
// An FMP error envelope is reported as *APIError even when the status is 200.
func (c *Client) Get(ctx context.Context, version Version, endpoint string, query url.Values, out any) error {
	body, err := c.GetRaw(ctx, version, endpoint, query)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

// GetRaw is Get without decoding.
func (c *Client) GetRaw(ctx context.Context, version Version, endpoint string, query url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(version, endpoint, query), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error carries the request URL, and with it the api key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		c.logger.DebugContext(ctx, "fmp request failed", slog.String("endpoint", endpoint), slogx.Error(err))
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}
	c.logger.DebugContext(ctx, "fmp request",
		slog.String("version", string(version)),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slogx.Elapsed(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Message: errorMessage(body, resp.Status)}
	}
	if msg := gjson.GetBytes(body, "Error Message"); msg.Exists() {
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Message: msg.String()}
	}
	return body, nil
}

// CloseIdleConnections releases pooled connections.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

func (c *Client) buildURL(version Version, endpoint string, query url.Values) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	if version == Stable {
		b.WriteString("/stable/")
	} else {
		b.WriteString("/api/")
		b.WriteString(string(version))
		b.WriteByte('/')
	}
	b.WriteString(strings.TrimLeft(endpoint, "/"))

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	if len(q) > 0 {
		b.WriteByte('?')
		b.WriteString(q.Encode())
	}
	return b.String()
}

func errorMessage(body []byte, status string) string {
	for _, path := range []string{"Error Message", "message", "error"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" && !gjson.ValidBytes(body) {
		return slogx.Truncate(s, maxErrorBody)
	}
	return status
}
