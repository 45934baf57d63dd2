package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// MarketMetricsClient exposes /v1/market_metrics.
type MarketMetricsClient struct {
	c *Client
}

// HousingEventCounts returns monthly sales and listing counts.
func (m *MarketMetricsClient) HousingEventCounts(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.HousingEventCounts], error) {
	return getMetric[models.HousingEventCounts](ctx, m.c, groupMarketMetrics, "housing_event_counts", parclID, p)
}

// HousingStock returns housing units by property type.
func (m *MarketMetricsClient) HousingStock(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.HousingStock], error) {
	return getMetric[models.HousingStock](ctx, m.c, groupMarketMetrics, "housing_stock", parclID, p)
}

// HousingEventPrices returns price distributions of sales and listings.
func (m *MarketMetricsClient) HousingEventPrices(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.HousingEventPrices], error) {
	return getMetric[models.HousingEventPrices](ctx, m.c, groupMarketMetrics, "housing_event_prices", parclID, p)
}

// AllCash returns cash-only transaction counts and shares.
func (m *MarketMetricsClient) AllCash(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.AllCash], error) {
	return getMetric[models.AllCash](ctx, m.c, groupMarketMetrics, "all_cash", parclID, p)
}

// HousingEventPropertyAttributes returns median attributes of transacted homes.
func (m *MarketMetricsClient) HousingEventPropertyAttributes(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.HousingEventPropertyAttributes], error) {
	return getMetric[models.HousingEventPropertyAttributes](ctx, m.c, groupMarketMetrics, "housing_event_property_attributes", parclID, p)
}

// BatchHousingEventCounts is HousingEventCounts for several markets.
func (m *MarketMetricsClient) BatchHousingEventCounts(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.HousingEventCounts], error) {
	return batchMetric[models.HousingEventCounts](ctx, m.c, groupMarketMetrics, "housing_event_counts", parclIDs, p)
}

// BatchHousingStock is HousingStock for several markets.
func (m *MarketMetricsClient) BatchHousingStock(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.HousingStock], error) {
	return batchMetric[models.HousingStock](ctx, m.c, groupMarketMetrics, "housing_stock", parclIDs, p)
}

// BatchHousingEventPrices is HousingEventPrices for several markets.
func (m *MarketMetricsClient) BatchHousingEventPrices(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.HousingEventPrices], error) {
	return batchMetric[models.HousingEventPrices](ctx, m.c, groupMarketMetrics, "housing_event_prices", parclIDs, p)
}

// BatchAllCash is AllCash for several markets.
func (m *MarketMetricsClient) BatchAllCash(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.AllCash], error) {
	return batchMetric[models.AllCash](ctx, m.c, groupMarketMetrics, "all_cash", parclIDs, p)
}

// BatchHousingEventPropertyAttributes is HousingEventPropertyAttributes for several markets.
func (m *MarketMetricsClient) BatchHousingEventPropertyAttributes(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.HousingEventPropertyAttributes], error) {
	return batchMetric[models.HousingEventPropertyAttributes](ctx, m.c, groupMarketMetrics, "housing_event_property_attributes", parclIDs, p)
}
