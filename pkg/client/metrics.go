package client

import (
	"context"
	"fmt"

	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// API path segments of the metric families.
const (
	groupMarketMetrics          = "market_metrics"
	groupInvestorMetrics        = "investor_metrics"
	groupForSaleMetrics         = "for_sale_market_metrics"
	groupRentalMetrics          = "rental_market_metrics"
	groupNewConstructionMetrics = "new_construction_metrics"
	groupPortfolioMetrics       = "portfolio_metrics"
	groupPriceFeed              = "price_feed"
)

// getMetric fetches GET /v1/{group}/{parcl_id}/{metric}.
func getMetric[T any](ctx context.Context, c *Client, group, metric string, parclID int64, p metricParams) (*pagination.Page[T], error) {
	if parclID <= 0 {
		return nil, invalidParam("parcl_id must be positive (got %d)", parclID)
	}
	path := fmt.Sprintf("/v1/%s/%d/%s", group, parclID, metric)
	req := pagination.Get(group+"."+metric, c.endpoint(path, p.Values()))
	return collect[T](ctx, c, req, p.paginate())
}

// batchMetric fetches POST /v1/{group}/{metric} for several markets.
// Continuation pages are requested with GET on the returned next link.
func batchMetric[T any](ctx context.Context, c *Client, group, metric string, parclIDs []int64, p metricParams) (*pagination.Page[T], error) {
	body, err := p.BatchBody(parclIDs)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/v1/%s/%s", group, metric)
	req := pagination.Post(group+".batch."+metric, c.endpoint(path, nil), body)
	return collect[T](ctx, c, req, p.paginate())
}
