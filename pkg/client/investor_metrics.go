package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// InvestorMetricsClient exposes /v1/investor_metrics.
type InvestorMetricsClient struct {
	c *Client
}

func (m *InvestorMetricsClient) HousingStockOwnership(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.InvestorHousingStockOwnership], error) {
	return getMetric[models.InvestorHousingStockOwnership](ctx, m.c, groupInvestorMetrics, "housing_stock_ownership", parclID, p)
}

func (m *InvestorMetricsClient) PurchaseToSaleRatio(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.InvestorPurchaseToSaleRatio], error) {
	return getMetric[models.InvestorPurchaseToSaleRatio](ctx, m.c, groupInvestorMetrics, "purchase_to_sale_ratio", parclID, p)
}

func (m *InvestorMetricsClient) HousingEventCounts(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.InvestorHousingEventCounts], error) {
	return getMetric[models.InvestorHousingEventCounts](ctx, m.c, groupInvestorMetrics, "housing_event_counts", parclID, p)
}

func (m *InvestorMetricsClient) HousingEventPrices(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.HousingEventPrices], error) {
	return getMetric[models.HousingEventPrices](ctx, m.c, groupInvestorMetrics, "housing_event_prices", parclID, p)
}

func (m *InvestorMetricsClient) NewListingsForSaleRollingCounts(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.InvestorNewListingsRollingCounts], error) {
	return getMetric[models.InvestorNewListingsRollingCounts](ctx, m.c, groupInvestorMetrics, "new_listings_for_sale_rolling_counts", parclID, p)
}

func (m *InvestorMetricsClient) BatchHousingStockOwnership(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.InvestorHousingStockOwnership], error) {
	return batchMetric[models.InvestorHousingStockOwnership](ctx, m.c, groupInvestorMetrics, "housing_stock_ownership", parclIDs, p)
}

func (m *InvestorMetricsClient) BatchPurchaseToSaleRatio(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.InvestorPurchaseToSaleRatio], error) {
	return batchMetric[models.InvestorPurchaseToSaleRatio](ctx, m.c, groupInvestorMetrics, "purchase_to_sale_ratio", parclIDs, p)
}

func (m *InvestorMetricsClient) BatchHousingEventCounts(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.InvestorHousingEventCounts], error) {
	return batchMetric[models.InvestorHousingEventCounts](ctx, m.c, groupInvestorMetrics, "housing_event_counts", parclIDs, p)
}

func (m *InvestorMetricsClient) BatchHousingEventPrices(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.HousingEventPrices], error) {
	return batchMetric[models.HousingEventPrices](ctx, m.c, groupInvestorMetrics, "housing_event_prices", parclIDs, p)
}

func (m *InvestorMetricsClient) BatchNewListingsForSaleRollingCounts(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.InvestorNewListingsRollingCounts], error) {
	return batchMetric[models.InvestorNewListingsRollingCounts](ctx, m.c, groupInvestorMetrics, "new_listings_for_sale_rolling_counts", parclIDs, p)
}
