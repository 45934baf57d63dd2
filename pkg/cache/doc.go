// Package cache provides a Redis-backed response cache for Parcl Labs GET
// requests.
//
// Metric series change at most once a day, so repeating an identical GET
// within a short window returns the same page. Serving it from Redis saves
// both latency and API credits.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	manager := cache.NewManager(redisClient)
//
//	key := cache.KeyFromURL(req.URL, cache.Namespace(apiKey))
//	entry, err := manager.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch from the API, then:
//		_ = manager.Set(ctx, key, cache.NewEntry(resp.StatusCode, resp.Header, body, 10*time.Minute))
//	}
//
// Keys carry the request host and a namespace derived from the API key, so
// staging and production clients, or clients with different entitlements,
// can share one Redis without reading each other's entries.
//
// Only 2xx GET responses belong in the cache. POST batch queries are never
// cached; their continuation pages are plain GETs and are.
//
// Entry lifetime comes from the response Expires header when the server sends
// one, otherwise from the caller's fallback TTL (DefaultTTL when zero).
//
// # Metrics
//
//   - parcl_cache_hits_total{layer="redis"} - Cache hits
//   - parcl_cache_misses_total - Cache misses
//   - parcl_cache_size_bytes{layer="redis"} - Bytes written to and read from the cache
//   - parcl_cache_errors_total{operation} - Cache operation errors
package cache
