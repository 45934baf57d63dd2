package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// PriceFeedClient exposes /v1/price_feed for exchange-traded markets.
type PriceFeedClient struct {
	c *Client
}

// History returns the daily sale price feed of a market.
func (f *PriceFeedClient) History(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.PriceFeedEntry], error) {
	return getMetric[models.PriceFeedEntry](ctx, f.c, groupPriceFeed, "history", parclID, p)
}

// RentalHistory returns the daily rental price feed of a market.
func (f *PriceFeedClient) RentalHistory(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.PriceFeedEntry], error) {
	return getMetric[models.PriceFeedEntry](ctx, f.c, groupPriceFeed, "rental_price_feed", parclID, p)
}

func (f *PriceFeedClient) BatchHistory(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.PriceFeedEntry], error) {
	return batchMetric[models.PriceFeedEntry](ctx, f.c, groupPriceFeed, "history", parclIDs, p)
}

func (f *PriceFeedClient) BatchRentalHistory(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.PriceFeedEntry], error) {
	return batchMetric[models.PriceFeedEntry](ctx, f.c, groupPriceFeed, "rental_price_feed", parclIDs, p)
}
