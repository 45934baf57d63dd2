package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Sternrassler/parcl-client/pkg/credits"
	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
)

// PropertyClient exposes the property endpoints.
type PropertyClient struct {
	c *Client
}

// EventHistoryResponse is the result of an event history lookup.
type EventHistoryResponse struct {
	Properties []models.PropertyWithEvents `json:"properties"`
	Account    *credits.Usage              `json:"account,omitempty"`
}

// PropertyV2SearchResponse is the result of a v2 property search.
type PropertyV2SearchResponse struct {
	Properties []models.PropertyV2 `json:"properties"`
	Account    *credits.Usage      `json:"account,omitempty"`
}

// Search finds properties in a market.
//
// GET /v1/property/search
func (pc *PropertyClient) Search(ctx context.Context, p PropertySearchParams) (*pagination.Page[models.Property], error) {
	query, err := p.Values()
	if err != nil {
		return nil, err
	}
	req := pagination.Get("property.search", pc.c.endpoint("/v1/property/search", query))
	return collect[models.Property](ctx, pc.c, req, p.AutoPaginate)
}

// SearchByAddress resolves street addresses to properties.
//
// POST /v1/property/search_address
func (pc *PropertyClient) SearchByAddress(ctx context.Context, addresses []models.AddressSearchRequest) (*pagination.Page[models.Property], error) {
	if len(addresses) == 0 {
		return nil, invalidParam("at least one address is required")
	}
	req := pagination.Post("property.search_address", pc.c.endpoint("/v1/property/search_address", nil), addresses)
	return collect[models.Property](ctx, pc.c, req, false)
}

// EventHistory returns sale, listing and rental events of up to 1000 properties.
//
// POST /v1/property/event_history
func (pc *PropertyClient) EventHistory(ctx context.Context, p EventHistoryParams) (*EventHistoryResponse, error) {
	body, err := p.Body()
	if err != nil {
		return nil, err
	}
	req := pagination.Post("property.event_history", pc.c.endpoint("/v1/property/event_history", nil), body)
	resp, err := fetchJSON[EventHistoryResponse](ctx, pc.c, req)
	if err != nil {
		return nil, err
	}
	pc.c.tracker.Record(resp.Account)
	return resp, nil
}

// SearchV2 runs a filtered property search. Zero limit and offset are not sent.
//
// POST /v2/property_search
func (pc *PropertyClient) SearchV2(ctx context.Context, search models.PropertyV2SearchRequest, limit, offset int) (*PropertyV2SearchResponse, error) {
	if search.IsEmpty() {
		return nil, invalidParam("parcl_ids, parcl_property_ids or geo_coordinates is required")
	}

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	req := pagination.Post("property.search_v2", pc.c.endpoint("/v2/property_search", query), search)
	resp, err := fetchJSON[PropertyV2SearchResponse](ctx, pc.c, req)
	if err != nil {
		return nil, err
	}
	pc.c.tracker.Record(resp.Account)
	return resp, nil
}
