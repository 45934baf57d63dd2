package pagination

import (
	"net/http"

	"github.com/Sternrassler/parcl-client/pkg/credits"
)

// Links are the navigation URLs of a page. A nil Next ends pagination.
type Links struct {
	First *string `json:"first"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
	Last  *string `json:"last"`
}

// HasNext reports whether another page follows.
func (l Links) HasNext() bool {
	return l.Next != nil && *l.Next != ""
}

// Page is one response envelope of a paginated collection.
type Page[T any] struct {
	// ParclID is set by single-market endpoints; batch results leave it nil
	// because every item carries its own market identifier.
	ParclID *int64 `json:"parcl_id,omitempty"`

	// Items are kept in server order.
	Items []T `json:"items"`

	// Total is the server-reported match count across all pages.
	Total int64 `json:"total"`

	// Limit and Offset describe the page actually served.
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`

	Links Links `json:"links"`

	// Account is present only on endpoints that report credit usage.
	Account *credits.Usage `json:"account,omitempty"`
}

// Request describes a single page request.
type Request struct {
	// Method is http.MethodGet or http.MethodPost.
	Method string

	// URL is fully formed, query string included.
	URL string

	// Body is JSON-encoded for POST requests and ignored otherwise.
	Body any

	// Operation names the endpoint for logs and metrics.
	// Continuation requests inherit it.
	Operation string
}

// Get returns a GET request for rawURL.
func Get(operation, rawURL string) Request {
	return Request{Method: http.MethodGet, URL: rawURL, Operation: operation}
}

// Post returns a POST request for rawURL carrying body.
func Post(operation, rawURL string, body any) Request {
	return Request{Method: http.MethodPost, URL: rawURL, Body: body, Operation: operation}
}
