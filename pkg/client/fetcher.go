package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Sternrassler/parcl-client/pkg/cache"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for Parcl Labs requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parcl_requests_total",
		Help: "Total Parcl Labs requests by operation and status",
	}, []string{"operation", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parcl_request_duration_seconds",
		Help:    "Parcl Labs request duration in seconds by operation, retries included",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"operation"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parcl_errors_total",
		Help: "Total Parcl Labs errors by class",
	}, []string{"class"})
)

// response is a fully read HTTP response.
type response struct {
	status int
	header http.Header
	body   []byte

	// cached is set when the body came from the response cache.
	cached bool
}

// execute sends req, retrying HTTP 429 up to the policy's MaxRetries.
// Every other outcome is final on the first attempt.
func (c *Client) execute(ctx context.Context, req pagination.Request) (*response, error) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(req.Operation).Observe(time.Since(start).Seconds())
	}()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	// The body is encoded once and replayed on every attempt.
	var payload []byte
	if method != http.MethodGet && req.Body != nil {
		var err error
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request body: %w", req.Operation, err)
		}
	}

	var cacheKey cache.Key
	useCache := c.cache != nil && method == http.MethodGet
	if useCache {
		u, err := url.Parse(req.URL)
		if err != nil {
			return nil, invalidParam("url %q: %v", req.URL, err)
		}
		cacheKey = cache.KeyFromURL(u, c.cacheNS)

		entry, err := c.cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			c.logger.Debug().
				Str("operation", req.Operation).
				Str("key", cacheKey.String()).
				Msg("Serving cached response")
			requestsTotal.WithLabelValues(req.Operation, "cached").Inc()
			return &response{status: entry.StatusCode, body: entry.Data, cached: true}, nil
		case !errors.Is(err, cache.ErrCacheMiss):
			c.logger.Warn().Err(err).Str("operation", req.Operation).Msg("Cache get error")
		}
	}

	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil, fmt.Errorf("%w: %w", ErrContextCancelled, ctx.Err())
				}
				// The wait would outlast the deadline.
				return nil, fmt.Errorf("%s: request pacing: %w", req.Operation, err)
			}
		}

		resp, err := c.send(ctx, method, req, payload)
		if err != nil {
			errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
			requestsTotal.WithLabelValues(req.Operation, "network_error").Inc()
			c.logger.Error().
				Err(err).
				Str("operation", req.Operation).
				Int("attempt", attempt).
				Msg("Parcl request failed")
			return nil, err
		}
		requestsTotal.WithLabelValues(req.Operation, strconv.Itoa(resp.status)).Inc()

		if resp.status == http.StatusTooManyRequests {
			if attempt < c.retry.MaxRetries {
				backoff := c.retry.Backoff(attempt)
				retriesTotal.Inc()
				retryBackoffSeconds.Observe(backoff.Seconds())
				c.logger.Warn().
					Str("operation", req.Operation).
					Int("attempt", attempt).
					Dur("backoff", backoff).
					Msg("Rate limited - retrying after backoff")

				if err := c.sleep(ctx, backoff); err != nil {
					c.logger.Warn().
						Str("operation", req.Operation).
						Int("attempt", attempt).
						Msg("Context cancelled during retry backoff")
					return nil, err
				}
				continue
			}

			retryExhaustedTotal.Inc()
			errorsTotal.WithLabelValues(string(ErrorClassRateLimit)).Inc()
			c.logger.Warn().
				Str("operation", req.Operation).
				Int("attempts", attempt+1).
				Msg("Retry attempts exhausted")
			return nil, &RateLimitError{Attempts: attempt + 1, Message: string(resp.body)}
		}

		if resp.status < 200 || resp.status >= 300 {
			apiErr := &APIError{StatusCode: resp.status, Message: string(resp.body)}
			errorsTotal.WithLabelValues(string(apiErr.ErrorClass())).Inc()
			c.logger.Warn().
				Str("operation", req.Operation).
				Int("status", resp.status).
				Str("error_class", string(apiErr.ErrorClass())).
				Msg("Parcl request error")
			return nil, apiErr
		}

		if attempt > 0 {
			c.logger.Info().
				Str("operation", req.Operation).
				Int("attempt", attempt).
				Msg("Request succeeded after retry")
		}

		if useCache {
			c.store(ctx, req.Operation, cacheKey, resp)
		}

		return resp, nil
	}
}

// send performs a single HTTP round trip and reads the whole body.
func (c *Client) send(ctx context.Context, method string, req pagination.Request, payload []byte) (*response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, invalidParam("build %s request: %v", req.Operation, err)
	}
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("operation", req.Operation).
		Str("method", method).
		Str("path", httpReq.URL.Path).
		Msg("Executing Parcl request")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: method, URL: req.URL, Err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: req.URL, Err: fmt.Errorf("read body: %w", err)}
	}

	return &response{status: httpResp.StatusCode, header: httpResp.Header, body: data}, nil
}

// store writes a successful response to the cache. Failures only log.
func (c *Client) store(ctx context.Context, operation string, key cache.Key, resp *response) {
	entry := cache.NewEntry(resp.status, resp.header, resp.body, c.cacheTTL)
	if err := c.cache.Set(ctx, key, entry); err != nil {
		c.logger.Warn().Err(err).Str("operation", operation).Msg("Failed to cache response")
		return
	}
	c.logger.Debug().
		Str("operation", operation).
		Dur("ttl", entry.TTL()).
		Msg("Cached response")
}

// fetchPage fetches and decodes one page envelope. A page served from the
// cache carries no account usage since no credits were spent on it.
func fetchPage[T any](ctx context.Context, c *Client, req pagination.Request) (*pagination.Page[T], error) {
	resp, err := c.execute(ctx, req)
	if err != nil {
		return nil, err
	}

	var page pagination.Page[T]
	if err := json.Unmarshal(resp.body, &page); err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassParse)).Inc()
		return nil, &ParseError{Operation: req.Operation, Err: err}
	}
	if resp.cached {
		page.Account = nil
	}

	return &page, nil
}

// pageFetcher binds fetchPage to a client.
func pageFetcher[T any](c *Client) pagination.Fetcher[T] {
	return pagination.FetcherFunc[T](func(ctx context.Context, req pagination.Request) (*pagination.Page[T], error) {
		return fetchPage[T](ctx, c, req)
	})
}

// collect runs the paginator over req and records usage on the client's tracker.
func collect[T any](ctx context.Context, c *Client, req pagination.Request, autoPaginate bool) (*pagination.Page[T], error) {
	return pagination.Collect[T](ctx, pageFetcher[T](c), req, autoPaginate, c.tracker)
}

// fetchJSON fetches a single non-envelope response into T.
func fetchJSON[T any](ctx context.Context, c *Client, req pagination.Request) (*T, error) {
	resp, err := c.execute(ctx, req)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(resp.body, &out); err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassParse)).Inc()
		return nil, &ParseError{Operation: req.Operation, Err: err}
	}

	return &out, nil
}
