package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a cached GET response.
type Key struct {
	// Namespace separates callers sharing one Redis, normally the output of
	// Namespace for the caller's API key. Responses are entitlement-scoped,
	// so two keys must never read each other's entries.
	Namespace string

	// Host is the API host including port, e.g. "api.parcllabs.com".
	Host string

	// Path is the request path, e.g. "/v1/market_metrics/2900187/housing_stock".
	Path string

	// Query holds the request query parameters.
	Query url.Values
}

// Namespace derives a short, stable cache namespace from an API key.
// The key itself never appears in Redis.
func Namespace(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:6])
}

// KeyFromURL builds a key from a request URL within namespace.
// The scheme is ignored; host, path and query are kept.
func KeyFromURL(u *url.URL, namespace string) Key {
	return Key{
		Namespace: namespace,
		Host:      strings.ToLower(u.Host),
		Path:      u.Path,
		Query:     u.Query(),
	}
}

// String generates a deterministic cache key string.
// Format: parcl:namespace:host/path:query1=val1:query2=val2
//
// Example:
//
//	parcl:5e884898da28:api.parcllabs.com/v1/market_metrics/2900187/housing_stock:limit=12:offset=0
//
// Empty namespace and host are left out. Multi-valued parameters keep their
// values in request order, joined by ",".
func (k Key) String() string {
	parts := []string{"parcl"}
	if k.Namespace != "" {
		parts = append(parts, k.Namespace)
	}

	target := strings.Trim(k.Path, "/")
	if k.Host != "" {
		target = strings.TrimSuffix(k.Host+"/"+target, "/")
	}
	if target != "" {
		parts = append(parts, target)
	}

	if len(k.Query) > 0 {
		names := make([]string, 0, len(k.Query))
		for name := range k.Query {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			parts = append(parts, name+"="+strings.Join(k.Query[name], ","))
		}
	}

	return strings.Join(parts, ":")
}
