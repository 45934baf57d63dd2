package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// NewConstructionMetricsClient exposes /v1/new_construction_metrics.
type NewConstructionMetricsClient struct {
	c *Client
}

// HousingEventCounts returns sales and listing counts of newly built homes.
func (m *NewConstructionMetricsClient) HousingEventCounts(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.HousingEventCounts], error) {
	return getMetric[models.HousingEventCounts](ctx, m.c, groupNewConstructionMetrics, "housing_event_counts", parclID, p)
}

// HousingEventPrices returns price distributions of newly built homes.
func (m *NewConstructionMetricsClient) HousingEventPrices(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.HousingEventPrices], error) {
	return getMetric[models.HousingEventPrices](ctx, m.c, groupNewConstructionMetrics, "housing_event_prices", parclID, p)
}

func (m *NewConstructionMetricsClient) BatchHousingEventCounts(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.HousingEventCounts], error) {
	return batchMetric[models.HousingEventCounts](ctx, m.c, groupNewConstructionMetrics, "housing_event_counts", parclIDs, p)
}

func (m *NewConstructionMetricsClient) BatchHousingEventPrices(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.HousingEventPrices], error) {
	return batchMetric[models.HousingEventPrices](ctx, m.c, groupNewConstructionMetrics, "housing_event_prices", parclIDs, p)
}
