package pagination

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Sternrassler/parcl-client/pkg/credits"
	"github.com/Sternrassler/parcl-client/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parcl_pages_fetched_total",
	Help: "Total pages fetched by the paginator by operation",
}, []string{"operation"})

// Fetcher fetches exactly one page.
type Fetcher[T any] interface {
	FetchPage(ctx context.Context, req Request) (*Page[T], error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc[T any] func(ctx context.Context, req Request) (*Page[T], error)

// FetchPage calls f.
func (f FetcherFunc[T]) FetchPage(ctx context.Context, req Request) (*Page[T], error) {
	return f(ctx, req)
}

// UsageRecorder receives the account metadata of every fetched page.
type UsageRecorder interface {
	Record(u *credits.Usage)
}

// Collect fetches the first page of req and, when autoPaginate is set, follows
// Links.Next until the server stops returning one.
//
// Continuation pages are always requested with GET, including for POST batch
// queries: the server's next link is a self-contained URL and the original
// body is not resent.
//
// The result keeps the first page's ParclID, Total, Limit and Offset and the
// last page's Links. Any failure discards what was accumulated.
func Collect[T any](ctx context.Context, f Fetcher[T], req Request, autoPaginate bool, rec UsageRecorder) (*Page[T], error) {
	start := time.Now()

	result, err := f.FetchPage(ctx, req)
	if err != nil {
		return nil, err
	}
	pagesFetchedTotal.WithLabelValues(req.Operation).Inc()
	record(rec, result.Account)

	if !autoPaginate {
		return result, nil
	}

	pages := 1
	current := req.URL
	for result.Links.HasNext() {
		nextURL, err := resolve(current, *result.Links.Next)
		if err != nil {
			return nil, fmt.Errorf("resolve next link after page %d: %w", pages, err)
		}

		next, err := f.FetchPage(ctx, Get(req.Operation, nextURL))
		if err != nil {
			logger := logging.NewLogger("pagination")
			logger.Warn().
				Err(err).
				Str("operation", req.Operation).
				Int("pages_fetched", pages).
				Msg("Pagination failed - discarding accumulated pages")
			return nil, err
		}
		pages++
		pagesFetchedTotal.WithLabelValues(req.Operation).Inc()
		record(rec, next.Account)

		result.Items = append(result.Items, next.Items...)
		result.Links = next.Links
		current = nextURL
	}

	if pages > 1 {
		logger := logging.NewLogger("pagination")
		logger.Info().
			Str("operation", req.Operation).
			Int("pages", pages).
			Int("items", len(result.Items)).
			Dur("duration", time.Since(start)).
			Msg("Pagination complete")
	}

	return result, nil
}

func record(rec UsageRecorder, u *credits.Usage) {
	if rec == nil || u == nil {
		return
	}
	rec.Record(u)
}

// resolve returns next as an absolute URL, resolving it against base when it
// is relative.
func resolve(base, next string) (string, error) {
	nextURL, err := url.Parse(next)
	if err != nil {
		return "", err
	}
	if nextURL.IsAbs() {
		return next, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(nextURL).String(), nil
}
