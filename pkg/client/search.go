package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// SearchClient exposes /v1/search.
type SearchClient struct {
	c *Client
}

// Markets searches housing markets by name, location and ranking.
func (s *SearchClient) Markets(ctx context.Context, p SearchParams) (*pagination.Page[models.Market], error) {
	req := pagination.Get("search.markets", s.c.endpoint("/v1/search/markets", p.Values()))
	return collect[models.Market](ctx, s.c, req, p.AutoPaginate)
}
