package pagination

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Sternrassler/parcl-client/pkg/credits"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func strPtr(s string) *string { return &s }

// scriptedFetcher serves pages keyed by URL and records every request.
type scriptedFetcher struct {
	pages    map[string]*Page[string]
	errs     map[string]error
	requests []Request
}

func (f *scriptedFetcher) FetchPage(_ context.Context, req Request) (*Page[string], error) {
	f.requests = append(f.requests, req)
	if err, ok := f.errs[req.URL]; ok {
		return nil, err
	}
	page, ok := f.pages[req.URL]
	if !ok {
		return nil, fmt.Errorf("unexpected url %q", req.URL)
	}
	// Hand out a copy so accumulation never mutates the script.
	cp := *page
	cp.Items = append([]string(nil), page.Items...)
	return &cp, nil
}

type usageLog struct {
	usages []*credits.Usage
}

func (u *usageLog) Record(usage *credits.Usage) {
	u.usages = append(u.usages, usage)
}

func TestCollect_ConcatenatesPages(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]*Page[string]{
		"https://api.test/v1/items": {
			Items: []string{"a", "b"},
			Total: 3, Limit: 2, Offset: 0,
			Links: Links{First: strPtr("https://api.test/v1/items"), Next: strPtr("/p2")},
		},
		"https://api.test/p2": {
			Items: []string{"c"},
			Total: 3, Limit: 2, Offset: 2,
			Links: Links{Prev: strPtr("https://api.test/v1/items")},
		},
	}}

	page, err := Collect[string](context.Background(), fetcher,
		Get("items", "https://api.test/v1/items"), true, nil)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, page.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if page.Links.Next != nil {
		t.Errorf("Links.Next = %q, want nil", *page.Links.Next)
	}
	if page.Links.Prev == nil || *page.Links.Prev != "https://api.test/v1/items" {
		t.Errorf("Links should come from the last page, got %+v", page.Links)
	}
	if page.Offset != 0 || page.Limit != 2 || page.Total != 3 {
		t.Errorf("metadata should come from the first page, got total=%d limit=%d offset=%d",
			page.Total, page.Limit, page.Offset)
	}
	if len(fetcher.requests) != 2 {
		t.Errorf("requests = %d, want 2", len(fetcher.requests))
	}
}

func TestCollect_ManyPagesInOrder(t *testing.T) {
	const pageCount = 7
	pages := map[string]*Page[string]{}
	var want []string
	for i := 1; i <= pageCount; i++ {
		u := fmt.Sprintf("https://api.test/items?page=%d", i)
		p := &Page[string]{}
		for j := 0; j < i; j++ {
			item := fmt.Sprintf("p%d-%d", i, j)
			p.Items = append(p.Items, item)
			want = append(want, item)
		}
		if i < pageCount {
			p.Links.Next = strPtr(fmt.Sprintf("https://api.test/items?page=%d", i+1))
		}
		pages[u] = p
	}

	fetcher := &scriptedFetcher{pages: pages}
	page, err := Collect[string](context.Background(), fetcher,
		Get("items", "https://api.test/items?page=1"), true, nil)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if diff := cmp.Diff(want, page.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if len(fetcher.requests) != pageCount {
		t.Errorf("requests = %d, want %d", len(fetcher.requests), pageCount)
	}
}

func TestCollect_SinglePageMakesOneCall(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]*Page[string]{
		"https://api.test/only": {Items: []string{"x"}, Total: 1},
	}}

	page, err := Collect[string](context.Background(), fetcher, Get("only", "https://api.test/only"), true, nil)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(fetcher.requests) != 1 {
		t.Errorf("requests = %d, want 1", len(fetcher.requests))
	}
	if diff := cmp.Diff([]string{"x"}, page.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_WithoutAutoPaginateReturnsFirstPage(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]*Page[string]{
		"https://api.test/v1/items": {
			Items: []string{"a", "b"},
			Links: Links{Next: strPtr("https://api.test/p2")},
		},
	}}

	page, err := Collect[string](context.Background(), fetcher, Get("items", "https://api.test/v1/items"), false, nil)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(fetcher.requests) != 1 {
		t.Errorf("requests = %d, want 1", len(fetcher.requests))
	}
	if !page.Links.HasNext() || *page.Links.Next != "https://api.test/p2" {
		t.Errorf("next link should be preserved for manual resumption, got %+v", page.Links)
	}
}

func TestCollect_PostContinuesWithGet(t *testing.T) {
	body := map[string]any{"parcl_id": []int64{1, 2}}
	fetcher := &scriptedFetcher{pages: map[string]*Page[string]{
		"https://api.test/v1/batch": {
			Items: []string{"m1"},
			Links: Links{Next: strPtr("https://api.test/v1/batch?offset=1")},
		},
		"https://api.test/v1/batch?offset=1": {Items: []string{"m2"}},
	}}

	_, err := Collect[string](context.Background(), fetcher, Post("batch", "https://api.test/v1/batch", body), true, nil)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(fetcher.requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(fetcher.requests))
	}
	first, second := fetcher.requests[0], fetcher.requests[1]
	if first.Method != http.MethodPost || first.Body == nil {
		t.Errorf("first request = %+v, want POST with body", first)
	}
	if second.Method != http.MethodGet || second.Body != nil {
		t.Errorf("continuation request = %+v, want GET without body", second)
	}
	if second.Operation != "batch" {
		t.Errorf("continuation Operation = %q, want %q", second.Operation, "batch")
	}
}

func TestCollect_FailureDiscardsPartialResults(t *testing.T) {
	pageErr := errors.New("page 3 failed")
	fetcher := &scriptedFetcher{
		pages: map[string]*Page[string]{
			"https://api.test/1": {Items: []string{"a"}, Links: Links{Next: strPtr("https://api.test/2")}},
			"https://api.test/2": {Items: []string{"b"}, Links: Links{Next: strPtr("https://api.test/3")}},
		},
		errs: map[string]error{"https://api.test/3": pageErr},
	}

	page, err := Collect[string](context.Background(), fetcher, Get("items", "https://api.test/1"), true, nil)
	if !errors.Is(err, pageErr) {
		t.Fatalf("Collect() error = %v, want %v", err, pageErr)
	}
	if page != nil {
		t.Errorf("Collect() page = %+v, want nil", page)
	}
}

func TestCollect_FirstPageFailure(t *testing.T) {
	pageErr := errors.New("boom")
	fetcher := &scriptedFetcher{errs: map[string]error{"https://api.test/1": pageErr}}
	rec := &usageLog{}

	_, err := Collect[string](context.Background(), fetcher, Get("items", "https://api.test/1"), true, rec)
	if !errors.Is(err, pageErr) {
		t.Fatalf("Collect() error = %v, want %v", err, pageErr)
	}
	if len(rec.usages) != 0 {
		t.Errorf("recorded %d usages, want 0", len(rec.usages))
	}
}

func TestCollect_RecordsUsagePerPage(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]*Page[string]{
		"https://api.test/1": {
			Items:   []string{"a"},
			Links:   Links{Next: strPtr("https://api.test/2")},
			Account: credits.NewUsage(5, 995),
		},
		"https://api.test/2": {
			Items: []string{"b"},
			Links: Links{Next: strPtr("https://api.test/3")},
		},
		"https://api.test/3": {
			Items:   []string{"c"},
			Account: credits.NewUsage(3, 992),
		},
	}}
	tracker := credits.NewTracker(nil, zerolog.Nop())

	_, err := Collect[string](context.Background(), fetcher, Get("items", "https://api.test/1"), true, tracker)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	snap := tracker.Snapshot()
	if snap.SessionCreditsUsed != 8 || snap.RemainingCredits != 992 {
		t.Errorf("snapshot = %+v, want used=8 remaining=992", snap)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		next string
		want string
	}{
		{"absolute", "https://api.test/v1/a?x=1", "https://other.test/v1/b?offset=10", "https://other.test/v1/b?offset=10"},
		{"root relative", "https://api.test/v1/a?x=1", "/v1/a?offset=10", "https://api.test/v1/a?offset=10"},
		{"query only", "https://api.test/v1/a?x=1", "?offset=20", "https://api.test/v1/a?offset=20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(tt.base, tt.next)
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinks_HasNext(t *testing.T) {
	if (Links{}).HasNext() {
		t.Error("empty links should not have next")
	}
	if (Links{Next: strPtr("")}).HasNext() {
		t.Error("empty next string should not count as a next link")
	}
	if !(Links{Next: strPtr("/p2")}).HasNext() {
		t.Error("non-empty next should count")
	}
}
