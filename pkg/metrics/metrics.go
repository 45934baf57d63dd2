// Package metrics exposes the Prometheus metrics of the Parcl Labs client.
// Metrics are defined next to the code that updates them (client, cache,
// credits, pagination) and registered via promauto on the default registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the registerer every parcl_* metric is registered on.
var Registry = prometheus.DefaultRegisterer

// Gatherer reads back what Registry holds.
var Gatherer = prometheus.DefaultGatherer

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - parcl_requests_total{operation, status} (Counter): Requests by operation and HTTP status, "cached" or "network_error"
//   - parcl_request_duration_seconds{operation} (Histogram): Request duration including retries
//   - parcl_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network, parse)
//
// Retry Metrics (pkg/client):
//   - parcl_retries_total (Counter): Retries after a 429 response
//   - parcl_retry_backoff_seconds (Histogram): Backoff before each retry
//   - parcl_retry_exhausted_total (Counter): Requests still rate limited after every retry
//
// Pagination Metrics (pkg/pagination):
//   - parcl_pages_fetched_total{operation} (Counter): Pages fetched by operation
//
// Credit Metrics (pkg/credits):
//   - parcl_credits_used_total (Counter): Estimated credits consumed by this process
//   - parcl_credits_remaining (Gauge): Latest remaining credit estimate
//
// Cache Metrics (pkg/cache):
//   - parcl_cache_hits_total{layer="redis"} (Counter): Cache hits by layer
//   - parcl_cache_misses_total (Counter): Cache misses
//   - parcl_cache_size_bytes{layer="redis"} (Gauge): Size of the last stored entry
//   - parcl_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(parcl_cache_hits_total[5m])) /
//   (sum(rate(parcl_cache_hits_total[5m])) + sum(rate(parcl_cache_misses_total[5m])))
//
//   # Credit Burn Rate per Hour
//   rate(parcl_credits_used_total[1h]) * 3600
//
//   # 429 Pressure
//   rate(parcl_retries_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(parcl_request_duration_seconds_bucket[5m]))
