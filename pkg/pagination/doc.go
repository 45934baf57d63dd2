// Package pagination walks cursor-paginated Parcl Labs collections.
//
// Every collection endpoint answers with the same envelope:
//
//	{"items": [...], "total": n, "limit": n, "offset": n,
//	 "links": {"first": ..., "next": ..., "prev": ..., "last": ...}}
//
// The URL of page N+1 is only known once page N has been parsed, so pages of
// one collection are fetched strictly one after another. Collect drives a
// single-page Fetcher along the chain of next links and concatenates the
// items.
//
// Example usage:
//
//	page, err := pagination.Collect(ctx, fetcher,
//		pagination.Get("market_metrics.housing_event_counts", url), true, tracker)
//
// Collect:
//   - Always fetches the first page
//   - Follows next links only when autoPaginate is true
//   - Continues POST batch queries with GET on the returned link
//   - Reports every page's account usage to the recorder
//   - Returns no partial data on failure
//
// There is no page limit; a server that always returns a next link makes
// Collect run until ctx is cancelled.
package pagination
