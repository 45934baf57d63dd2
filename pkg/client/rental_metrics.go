package client

import (
	"context"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// RentalMetricsClient exposes /v1/rental_market_metrics.
type RentalMetricsClient struct {
	c *Client
}

func (m *RentalMetricsClient) GrossYield(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.GrossYield], error) {
	return getMetric[models.GrossYield](ctx, m.c, groupRentalMetrics, "gross_yield", parclID, p)
}

func (m *RentalMetricsClient) RentalUnitsConcentration(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.RentalUnitsConcentration], error) {
	return getMetric[models.RentalUnitsConcentration](ctx, m.c, groupRentalMetrics, "rental_units_concentration", parclID, p)
}

func (m *RentalMetricsClient) NewListingsForRentRollingCounts(ctx context.Context, parclID int64, p MetricsParams) (*pagination.Page[models.RentalNewListingsRollingCounts], error) {
	return getMetric[models.RentalNewListingsRollingCounts](ctx, m.c, groupRentalMetrics, "new_listings_for_rent_rolling_counts", parclID, p)
}

func (m *RentalMetricsClient) BatchGrossYield(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.GrossYield], error) {
	return batchMetric[models.GrossYield](ctx, m.c, groupRentalMetrics, "gross_yield", parclIDs, p)
}

func (m *RentalMetricsClient) BatchRentalUnitsConcentration(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.RentalUnitsConcentration], error) {
	return batchMetric[models.RentalUnitsConcentration](ctx, m.c, groupRentalMetrics, "rental_units_concentration", parclIDs, p)
}

func (m *RentalMetricsClient) BatchNewListingsForRentRollingCounts(ctx context.Context, parclIDs []int64, p MetricsParams) (*pagination.Page[models.RentalNewListingsRollingCounts], error) {
	return batchMetric[models.RentalNewListingsRollingCounts](ctx, m.c, groupRentalMetrics, "new_listings_for_rent_rolling_counts", parclIDs, p)
}
