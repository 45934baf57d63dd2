package cache

import (
	"net/http"
	"time"
)

const (
	// DefaultTTL is the fallback TTL when neither the response nor the
	// caller sets one.
	DefaultTTL = 5 * time.Minute
)

// Entry is a cached API response body.
type Entry struct {
	// Data is the raw response body.
	Data []byte `json:"data"`

	// StatusCode is the HTTP status of the cached response.
	StatusCode int `json:"status_code"`

	// Expires is when the entry becomes stale.
	Expires time.Time `json:"expires"`

	// CachedAt is when the response was stored.
	CachedAt time.Time `json:"cached_at"`
}

// NewEntry builds an entry from a response that has already been read.
// fallbackTTL applies when the response carries no usable Expires header.
func NewEntry(statusCode int, header http.Header, body []byte, fallbackTTL time.Duration) *Entry {
	return &Entry{
		Data:       body,
		StatusCode: statusCode,
		Expires:    parseExpires(header, fallbackTTL),
		CachedAt:   time.Now(),
	}
}

// IsExpired returns true if the cache entry has expired.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}

// parseExpires returns the expiry from the Expires header, or now plus the
// fallback TTL if the header is missing or malformed.
func parseExpires(headers http.Header, fallbackTTL time.Duration) time.Time {
	if fallbackTTL <= 0 {
		fallbackTTL = DefaultTTL
	}

	expiresStr := headers.Get("Expires")
	if expiresStr == "" {
		return time.Now().Add(fallbackTTL)
	}

	expires, err := http.ParseTime(expiresStr)
	if err != nil {
		return time.Now().Add(fallbackTTL)
	}

	// Already expired - the entry will not be stored
	if expires.Before(time.Now()) {
		return time.Now()
	}

	return expires
}
