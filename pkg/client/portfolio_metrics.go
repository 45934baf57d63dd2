package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// PortfolioMetricsClient exposes /v1/portfolio_metrics. All metrics cover
// single-family homes held by multi-property owners.
type PortfolioMetricsClient struct {
	c *Client
}

func (m *PortfolioMetricsClient) SFHousingStockOwnership(ctx context.Context, parclID int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioStockOwnership], error) {
	return getMetric[models.PortfolioStockOwnership](ctx, m.c, groupPortfolioMetrics, "sf_housing_stock_ownership", parclID, p)
}

func (m *PortfolioMetricsClient) SFHousingEventCounts(ctx context.Context, parclID int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioHousingEventCounts], error) {
	return getMetric[models.PortfolioHousingEventCounts](ctx, m.c, groupPortfolioMetrics, "sf_housing_event_counts", parclID, p)
}

func (m *PortfolioMetricsClient) SFNewListingsForSaleRollingCounts(ctx context.Context, parclID int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioNewListingsRollingCounts], error) {
	return getMetric[models.PortfolioNewListingsRollingCounts](ctx, m.c, groupPortfolioMetrics, "sf_new_listings_for_sale_rolling_counts", parclID, p)
}

func (m *PortfolioMetricsClient) SFNewListingsForRentRollingCounts(ctx context.Context, parclID int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioRentalListingsRollingCounts], error) {
	return getMetric[models.PortfolioRentalListingsRollingCounts](ctx, m.c, groupPortfolioMetrics, "sf_new_listings_for_rent_rolling_counts", parclID, p)
}

func (m *PortfolioMetricsClient) BatchSFHousingStockOwnership(ctx context.Context, parclIDs []int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioStockOwnership], error) {
	return batchMetric[models.PortfolioStockOwnership](ctx, m.c, groupPortfolioMetrics, "sf_housing_stock_ownership", parclIDs, p)
}

func (m *PortfolioMetricsClient) BatchSFHousingEventCounts(ctx context.Context, parclIDs []int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioHousingEventCounts], error) {
	return batchMetric[models.PortfolioHousingEventCounts](ctx, m.c, groupPortfolioMetrics, "sf_housing_event_counts", parclIDs, p)
}

func (m *PortfolioMetricsClient) BatchSFNewListingsForSaleRollingCounts(ctx context.Context, parclIDs []int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioNewListingsRollingCounts], error) {
	return batchMetric[models.PortfolioNewListingsRollingCounts](ctx, m.c, groupPortfolioMetrics, "sf_new_listings_for_sale_rolling_counts", parclIDs, p)
}

func (m *PortfolioMetricsClient) BatchSFNewListingsForRentRollingCounts(ctx context.Context, parclIDs []int64, p PortfolioMetricsParams) (*pagination.Page[models.PortfolioRentalListingsRollingCounts], error) {
	return batchMetric[models.PortfolioRentalListingsRollingCounts](ctx, m.c, groupPortfolioMetrics, "sf_new_listings_for_rent_rolling_counts", parclIDs, p)
}
