// Package testutil provides testing utilities for the Parcl Labs client.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// RecordedRequest is a request received by the mock server.
type RecordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          []byte
}

// MockParcl is a configurable mock Parcl Labs server for testing.
type MockParcl struct {
	server    *httptest.Server
	mu        sync.RWMutex
	handlers  map[string]func(w http.ResponseWriter, r *http.Request)
	sequences map[string][]MockResponse

	requests []RecordedRequest
}

// NewMockParcl creates a new mock Parcl Labs server.
func NewMockParcl() *MockParcl {
	mock := &MockParcl{
		handlers:  make(map[string]func(w http.ResponseWriter, r *http.Request)),
		sequences: make(map[string][]MockResponse),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mock.mu.Lock()
		mock.requests = append(mock.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})

		// Sequenced responses are served in order; the last one repeats.
		if seq, ok := mock.sequences[r.URL.Path]; ok && len(seq) > 0 {
			resp := seq[0]
			if len(seq) > 1 {
				mock.sequences[r.URL.Path] = seq[1:]
			}
			mock.mu.Unlock()
			writeResponse(w, resp)
			return
		}

		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}

		http.Error(w, `{"detail": "Not Found"}`, http.StatusNotFound)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockParcl) URL() string {
	return m.server.URL
}

// Client returns an HTTP client wired to the mock server.
func (m *MockParcl) Client() *http.Client {
	return m.server.Client()
}

// Close shuts down the mock server.
func (m *MockParcl) Close() {
	m.server.Close()
}

// Reset clears recorded requests.
func (m *MockParcl) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockParcl) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockParcl) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, resp)
	})
}

// SetSequence serves responses for path one per request, repeating the last.
func (m *MockParcl) SetSequence(path string, responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequences[path] = responses
}

// Requests returns a copy of every request received so far.
func (m *MockParcl) Requests() []RecordedRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockParcl) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

func writeResponse(w http.ResponseWriter, resp MockResponse) {
	if resp.Delay > 0 {
		time.Sleep(resp.Delay)
	}
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		w.Write([]byte(resp.Body))
	}
}

// PageJSON renders a page envelope. An empty next yields "next": null.
// used < 0 omits the account block.
func PageJSON(items any, total, limit, offset int, next string, used, remaining int64) string {
	env := map[string]any{
		"items":  items,
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"links": map[string]any{
			"first": nil,
			"next":  nullable(next),
			"prev":  nil,
			"last":  nil,
		},
	}
	if used >= 0 {
		env["account"] = map[string]any{
			"est_credits_used":  used,
			"est_remaining_credits": remaining,
		}
	}
	data, err := json.Marshal(env)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal page: %v", err))
	}
	return string(data)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NewOKResponse creates a 200 OK response with a JSON body.
func NewOKResponse(body string) MockResponse {
	return MockResponse{StatusCode: http.StatusOK, Body: body}
}

// NewRateLimitResponse creates a 429 Too Many Requests response.
func NewRateLimitResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"detail": "Rate limit exceeded"}`,
	}
}

// NewErrorResponse creates a response with the given status and detail.
func NewErrorResponse(status int, detail string) MockResponse {
	return MockResponse{
		StatusCode: status,
		Body:       fmt.Sprintf(`{"detail": %q}`, detail),
	}
}
