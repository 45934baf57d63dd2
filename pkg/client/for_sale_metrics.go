package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// ForSaleMetricsClient exposes /v1/for_sale_market_metrics.
type ForSaleMetricsClient struct {
	c *Client
}

// ForSaleInventory returns the number of homes listed for sale.
func (m *ForSaleMetricsClient) ForSaleInventory(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.ForSaleInventory], error) {
	return getMetric[models.ForSaleInventory](ctx, m.c, groupForSaleMetrics, "for_sale_inventory", parclID, p)
}

// ForSaleInventoryPriceChanges returns price change statistics of listed homes.
func (m *ForSaleMetricsClient) ForSaleInventoryPriceChanges(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.ForSaleInventoryPriceChanges], error) {
	return getMetric[models.ForSaleInventoryPriceChanges](ctx, m.c, groupForSaleMetrics, "for_sale_inventory_price_changes", parclID, p)
}

// NewListingsRollingCounts returns rolling counts of new for-sale listings.
func (m *ForSaleMetricsClient) NewListingsRollingCounts(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.NewListingsRollingCounts], error) {
	return getMetric[models.NewListingsRollingCounts](ctx, m.c, groupForSaleMetrics, "new_listings_rolling_counts", parclID, p)
}

func (m *ForSaleMetricsClient) BatchForSaleInventory(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.ForSaleInventory], error) {
	return batchMetric[models.ForSaleInventory](ctx, m.c, groupForSaleMetrics, "for_sale_inventory", parclIDs, p)
}

func (m *ForSaleMetricsClient) BatchForSaleInventoryPriceChanges(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.ForSaleInventoryPriceChanges], error) {
	return batchMetric[models.ForSaleInventoryPriceChanges](ctx, m.c, groupForSaleMetrics, "for_sale_inventory_price_changes", parclIDs, p)
}

func (m *ForSaleMetricsClient) BatchNewListingsRollingCounts(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.NewListingsRollingCounts], error) {
	return batchMetric[models.NewListingsRollingCounts](ctx, m.c, groupForSaleMetrics, "new_listings_rolling_counts", parclIDs, p)
}
