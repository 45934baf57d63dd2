// Package client provides the Parcl Labs HTTP client with 429 retry,
// transparent pagination, optional Redis response caching and session credit
// tracking.
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Sternrassler/parcl-client/pkg/cache"
	"github.com/Sternrassler/parcl-client/pkg/credits"
	"github.com/Sternrassler/parcl-client/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Parcl Labs API.
const DefaultBaseURL = "https://api.parcllabs.com"

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey            = "PARCL_LABS_API_KEY"
	EnvBaseURL           = "PARCL_LABS_BASE_URL"
	EnvMaxRetries        = "PARCL_LABS_MAX_RETRIES"
	EnvInitialBackoff    = "PARCL_LABS_INITIAL_BACKOFF"
	EnvRequestsPerSecond = "PARCL_LABS_REQUESTS_PER_SECOND"
)

// Client is the main Parcl Labs client. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	retry      RetryPolicy
	limiter    *rate.Limiter
	cache      *cache.Manager
	cacheTTL   time.Duration
	cacheNS    string
	tracker    *credits.Tracker
	logger     zerolog.Logger
	sleep      sleepFunc
}

// Config holds the client configuration.
type Config struct {
	// APIKey is sent verbatim in the Authorization header (REQUIRED).
	APIKey string

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the transport. Timeout is ignored when set.
	HTTPClient *http.Client
	Timeout    time.Duration

	// Retry applies to HTTP 429 only.
	Retry RetryPolicy

	// Client-side pacing. Zero RequestsPerSecond disables it.
	RequestsPerSecond float64
	Burst             int

	// Cache stores successful GET responses when set.
	Cache    *cache.Manager
	CacheTTL time.Duration

	// CacheNamespace scopes cache entries. Defaults to a hash of APIKey, so
	// clients with different keys never share entries.
	CacheNamespace string

	// CreditSink receives a snapshot after every page that reports usage.
	CreditSink credits.Sink

	// Logger defaults to the global logger with component "parcl-client".
	Logger *zerolog.Logger
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:   apiKey,
		BaseURL:  DefaultBaseURL,
		Timeout:  30 * time.Second,
		Retry:    DefaultRetryPolicy(),
		Burst:    1,
		CacheTTL: cache.DefaultTTL,
	}
}

// ConfigFromEnv builds a configuration from PARCL_LABS_* variables.
// Unset optional variables keep their DefaultConfig values.
func ConfigFromEnv() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv(EnvAPIKey))
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	cfg := DefaultConfig(apiKey)

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvMaxRetries, err)
		}
		cfg.Retry.MaxRetries = n
	}
	if v := os.Getenv(EnvInitialBackoff); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvInitialBackoff, err)
		}
		cfg.Retry.InitialBackoff = d
	}
	if v := os.Getenv(EnvRequestsPerSecond); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvRequestsPerSecond, err)
		}
		cfg.RequestsPerSecond = rps
	}

	return cfg, nil
}

// NewFromEnv creates a client from PARCL_LABS_* variables.
func NewFromEnv() (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New creates a new Parcl Labs client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base_url must be an absolute URL (got %q)", cfg.BaseURL)
	}

	if err := cfg.Retry.validate(); err != nil {
		return nil, err
	}

	if cfg.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("requests_per_second must be >= 0 (got %g)", cfg.RequestsPerSecond)
	}

	logger := logging.NewLogger("parcl-client")
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "parcl-client").Logger()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = cache.DefaultTTL
	}

	cacheNS := cfg.CacheNamespace
	if cacheNS == "" {
		cacheNS = cache.Namespace(cfg.APIKey)
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		retry:      cfg.Retry,
		limiter:    limiter,
		cache:      cfg.Cache,
		cacheTTL:   cacheTTL,
		cacheNS:    cacheNS,
		tracker:    credits.NewTracker(cfg.CreditSink, logger),
		logger:     logger,
		sleep:      sleepContext,
	}

	logger.Debug().
		Str("base_url", c.baseURL).
		Int("max_retries", c.retry.MaxRetries).
		Dur("initial_backoff", c.retry.InitialBackoff).
		Bool("cache", c.cache != nil).
		Bool("pacing", c.limiter != nil).
		Str("session_id", c.tracker.SessionID()).
		Msg("Parcl client created")

	return c, nil
}

// String describes the client without revealing the API key.
func (c *Client) String() string {
	snap := c.tracker.Snapshot()
	return fmt.Sprintf("Client{base_url: %s, api_key: ***, max_retries: %d, initial_backoff: %s, session_credits_used: %d, remaining_credits: %d}",
		c.baseURL, c.retry.MaxRetries, c.retry.InitialBackoff, snap.SessionCreditsUsed, snap.RemainingCredits)
}

// Credits returns the session's credit counters.
func (c *Client) Credits() credits.Snapshot {
	return c.tracker.Snapshot()
}

// SessionID identifies this client's credit session.
func (c *Client) SessionID() string {
	return c.tracker.SessionID()
}

// RetryPolicy returns the policy the client was built with.
func (c *Client) RetryPolicy() RetryPolicy {
	return c.retry
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close waits for pending credit snapshots to reach the sink and releases
// idle connections. Close may be called more than once.
func (c *Client) Close() error {
	c.tracker.Flush()
	c.httpClient.CloseIdleConnections()
	return nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// endpoint joins path and encoded query onto the base URL.
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Search returns the market search endpoints.
func (c *Client) Search() *SearchClient { return &SearchClient{c: c} }

// MarketMetrics returns the market metrics endpoints.
func (c *Client) MarketMetrics() *MarketMetricsClient { return &MarketMetricsClient{c: c} }

// InvestorMetrics returns the investor metrics endpoints.
func (c *Client) InvestorMetrics() *InvestorMetricsClient { return &InvestorMetricsClient{c: c} }

// ForSaleMetrics returns the for-sale market metrics endpoints.
func (c *Client) ForSaleMetrics() *ForSaleMetricsClient { return &ForSaleMetricsClient{c: c} }

// RentalMetrics returns the rental market metrics endpoints.
func (c *Client) RentalMetrics() *RentalMetricsClient { return &RentalMetricsClient{c: c} }

// NewConstructionMetrics returns the new construction metrics endpoints.
func (c *Client) NewConstructionMetrics() *NewConstructionMetricsClient {
	return &NewConstructionMetricsClient{c: c}
}

// PortfolioMetrics returns the single-family portfolio metrics endpoints.
func (c *Client) PortfolioMetrics() *PortfolioMetricsClient { return &PortfolioMetricsClient{c: c} }

// PriceFeed returns the price feed endpoints.
func (c *Client) PriceFeed() *PriceFeedClient { return &PriceFeedClient{c: c} }

// Property returns the property endpoints.
func (c *Client) Property() *PropertyClient { return &PropertyClient{c: c} }
