package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/pkg/stdx"
	"github.com/fogfish/opts"
)

// EnvAPIKey is read when no key is passed to New.
const EnvAPIKey = "FMP_API_KEY"

// APIError is a failed request: a non-2xx status or an FMP error envelope.
type APIError = httpx.APIError

// Config holds the client settings. Use the options below to set them.
type Config struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerMinute int
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Option configures the client.
type Option = opts.Option[Config]

var (
	// APIKey sets the FMP api key. Without it FMP_API_KEY is used.
	APIKey = opts.ForName[Config, string]("APIKey")
	// BaseURL points the client at another host, e.g. a test server.
	BaseURL = opts.ForName[Config, string]("BaseURL")
	// Timeout bounds a single request.
	Timeout = opts.ForName[Config, time.Duration]("Timeout")
	// UserAgent overrides the User-Agent header.
	UserAgent = opts.ForName[Config, string]("UserAgent")
	// RateLimit caps the requests per minute sent by this client.
	RateLimit = opts.ForName[Config, int]("RequestsPerMinute")
	// HTTPClient replaces the underlying *http.Client.
	HTTPClient = opts.ForName[Config, *http.Client]("HTTPClient")
	// Logger receives request debug entries.
	Logger = opts.ForName[Config, *slog.Logger]("Logger")
)

// Client is the FMP API client. Endpoints are grouped by category:
//
//	c, err := api.New(api.APIKey(key))
//	quote, err := c.Quote.Get(ctx, "AAPL")
//	income, err := c.Financial.IncomeStatement(ctx, "AAPL", api.StatementParams{Period: types.PeriodQuarter, Limit: 4})
type Client struct {
	http *httpx.Client

	Quote         *QuoteAPI
	Company       *CompanyAPI
	Financial     *FinancialAPI
	Market        *MarketAPI
	Stock         *StockAPI
	ETF           *ETFAPI
	Economic      *EconomicAPI
	Calendar      *CalendarAPI
	List          *ListAPI
	Insider       *InsiderAPI
	Institutional *InstitutionalAPI
	SenateHouse   *SenateHouseAPI
}

// New creates a client. It fails with ErrMissingAPIKey when neither the APIKey option
// nor the FMP_API_KEY environment variable provides a key.
func New(options ...Option) (*Client, error) {
	var cfg Config
	if err := opts.Apply(&cfg, options); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		cfg.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	hc := httpx.New(httpx.Config{
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		UserAgent:         cfg.UserAgent,
		RequestsPerMinute: cfg.RequestsPerMinute,
		HTTPClient:        cfg.HTTPClient,
		Logger:            cfg.Logger,
	})
	return &Client{
		http:          hc,
		Quote:         &QuoteAPI{c: hc},
		Company:       &CompanyAPI{c: hc},
		Financial:     &FinancialAPI{c: hc},
		Market:        &MarketAPI{c: hc},
		Stock:         &StockAPI{c: hc},
		ETF:           &ETFAPI{c: hc},
		Economic:      &EconomicAPI{c: hc},
		Calendar:      &CalendarAPI{c: hc},
		List:          &ListAPI{c: hc},
		Insider:       &InsiderAPI{c: hc},
		Institutional: &InstitutionalAPI{c: hc},
		SenateHouse:   &SenateHouseAPI{c: hc},
	}, nil
}

// Must is New that panics on error.
func Must(options ...Option) *Client {
	return stdx.Must1(New(options...))
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func getList[T any](ctx context.Context, c *httpx.Client, version httpx.Version, endpoint string, query url.Values) ([]T, error) {
	var out []T
	if err := c.Get(ctx, version, endpoint, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getFirst fetches a list endpoint that describes a single entity.
func getFirst[T any](ctx context.Context, c *httpx.Client, version httpx.Version, endpoint string, query url.Values, subject string) (*T, error) {
	out, err := getList[T](ctx, c, version, endpoint, query)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, notFound(subject)
	}
	return &out[0], nil
}

func getObject[T any](ctx context.Context, c *httpx.Client, version httpx.Version, endpoint string, query url.Values) (*T, error) {
	var out T
	if err := c.Get(ctx, version, endpoint, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
