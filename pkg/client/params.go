package client

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Sternrassler/parcl-client/pkg/models"
)

// maxEventHistoryIDs is the server's limit on property ids per event history call.
const maxEventHistoryIDs = 1000

// MetricsParams filters the metric endpoints of the market, investor,
// for-sale, rental, new construction and price feed groups.
// Zero values are not sent.
type MetricsParams struct {
	Limit        int
	Offset       int
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	PropertyType models.PropertyType

	// AutoPaginate follows next links until the last page. Never sent.
	AutoPaginate bool
}

// Values encodes the params as a query string.
func (p MetricsParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	setString(v, "start_date", p.StartDate)
	setString(v, "end_date", p.EndDate)
	setString(v, "property_type", string(p.PropertyType))
	return v
}

// BatchBody builds the POST body for a multi-market query.
func (p MetricsParams) BatchBody(parclIDs []int64) (map[string]any, error) {
	body, err := batchBase(parclIDs, p.Limit, p.Offset, p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	if p.PropertyType != "" {
		body["property_type"] = string(p.PropertyType)
	}
	return body, nil
}

// PortfolioMetricsParams filters the portfolio metrics endpoints, which take a
// portfolio size instead of a property type.
type PortfolioMetricsParams struct {
	Limit         int
	Offset        int
	StartDate     string
	EndDate       string
	PortfolioSize models.PortfolioSize

	AutoPaginate bool
}

// Values encodes the params as a query string.
func (p PortfolioMetricsParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	setString(v, "start_date", p.StartDate)
	setString(v, "end_date", p.EndDate)
	setString(v, "portfolio_size", string(p.PortfolioSize))
	return v
}

// BatchBody builds the POST body for a multi-market query.
func (p PortfolioMetricsParams) BatchBody(parclIDs []int64) (map[string]any, error) {
	body, err := batchBase(parclIDs, p.Limit, p.Offset, p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	if p.PortfolioSize != "" {
		body["portfolio_size"] = string(p.PortfolioSize)
	}
	return body, nil
}

func batchBase(parclIDs []int64, limit, offset int, startDate, endDate string) (map[string]any, error) {
	if len(parclIDs) == 0 {
		return nil, invalidParam("at least one parcl_id is required")
	}
	body := map[string]any{"parcl_id": parclIDs}
	if limit > 0 {
		body["limit"] = limit
	}
	if offset > 0 {
		body["offset"] = offset
	}
	if startDate != "" {
		body["start_date"] = startDate
	}
	if endDate != "" {
		body["end_date"] = endDate
	}
	return body, nil
}

// SearchParams filters market search.
type SearchParams struct {
	Query             string
	LocationType      models.LocationType
	Region            models.USRegion
	StateAbbreviation string // sent upper-cased
	StateFIPSCode     string
	ParclID           int64
	GeoID             string
	SortBy            models.SortBy
	SortOrder         models.SortOrder
	Limit             int
	Offset            int

	AutoPaginate bool
}

// Values encodes the params as a query string.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	setString(v, "query", p.Query)
	setString(v, "location_type", string(p.LocationType))
	setString(v, "region", string(p.Region))
	setString(v, "state_abbreviation", strings.ToUpper(p.StateAbbreviation))
	setString(v, "state_fips_code", p.StateFIPSCode)
	if p.ParclID > 0 {
		v.Set("parcl_id", strconv.FormatInt(p.ParclID, 10))
	}
	setString(v, "geoid", p.GeoID)
	setString(v, "sort_by", string(p.SortBy))
	setString(v, "sort_order", string(p.SortOrder))
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	return v
}

// PropertySearchParams filters v1 property search. ParclID is required;
// PropertyType defaults to ALL_PROPERTIES. Flags are sent as 1 or 0 when set.
type PropertySearchParams struct {
	ParclID      int64
	PropertyType models.PropertyType
	Limit        int
	Offset       int

	SquareFootageMin int64
	SquareFootageMax int64
	BedroomsMin      int
	BedroomsMax      int
	BathroomsMin     int
	BathroomsMax     int
	YearBuiltMin     int
	YearBuiltMax     int

	CurrentEntityOwnerName models.EntityOwnerName

	EventHistorySaleFlag       *bool
	EventHistoryRentalFlag     *bool
	EventHistoryListingFlag    *bool
	CurrentNewConstructionFlag *bool
	CurrentOwnerOccupiedFlag   *bool
	CurrentInvestorOwnedFlag   *bool
	CurrentOnMarketFlag        *bool
	CurrentOnMarketRentalFlag  *bool

	RecordAddedDateStart string
	RecordAddedDateEnd   string

	AutoPaginate bool
}

// Values validates and encodes the params as a query string.
func (p PropertySearchParams) Values() (url.Values, error) {
	if p.ParclID <= 0 {
		return nil, invalidParam("parcl_id is required for property search")
	}
	propertyType := p.PropertyType
	if propertyType == "" {
		propertyType = models.PropertyTypeAllProperties
	}

	v := url.Values{}
	v.Set("parcl_id", strconv.FormatInt(p.ParclID, 10))
	v.Set("property_type", string(propertyType))
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	setInt64(v, "square_footage_min", p.SquareFootageMin)
	setInt64(v, "square_footage_max", p.SquareFootageMax)
	setInt(v, "bedrooms_min", p.BedroomsMin)
	setInt(v, "bedrooms_max", p.BedroomsMax)
	setInt(v, "bathrooms_min", p.BathroomsMin)
	setInt(v, "bathrooms_max", p.BathroomsMax)
	setInt(v, "year_built_min", p.YearBuiltMin)
	setInt(v, "year_built_max", p.YearBuiltMax)
	setString(v, "current_entity_owner_name", string(p.CurrentEntityOwnerName))
	setFlag(v, "event_history_sale_flag", p.EventHistorySaleFlag)
	setFlag(v, "event_history_rental_flag", p.EventHistoryRentalFlag)
	setFlag(v, "event_history_listing_flag", p.EventHistoryListingFlag)
	setFlag(v, "current_new_construction_flag", p.CurrentNewConstructionFlag)
	setFlag(v, "current_owner_occupied_flag", p.CurrentOwnerOccupiedFlag)
	setFlag(v, "current_investor_owned_flag", p.CurrentInvestorOwnedFlag)
	setFlag(v, "current_on_market_flag", p.CurrentOnMarketFlag)
	setFlag(v, "current_on_market_rental_flag", p.CurrentOnMarketRentalFlag)
	setString(v, "record_added_date_start", p.RecordAddedDateStart)
	setString(v, "record_added_date_end", p.RecordAddedDateEnd)
	return v, nil
}

// EventHistoryParams selects the event history of up to 1000 properties.
type EventHistoryParams struct {
	ParclPropertyIDs       []int64
	EventType              models.EventType
	StartDate              string
	EndDate                string
	EntityOwnerName        models.EntityOwnerName
	RecordUpdatedDateStart string
	RecordUpdatedDateEnd   string
}

// Body validates and builds the POST body.
func (p EventHistoryParams) Body() (map[string]any, error) {
	switch n := len(p.ParclPropertyIDs); {
	case n == 0:
		return nil, invalidParam("at least one parcl_property_id is required")
	case n > maxEventHistoryIDs:
		return nil, invalidParam("at most %d parcl_property_ids per request (got %d)", maxEventHistoryIDs, n)
	}

	body := map[string]any{"parcl_property_id": p.ParclPropertyIDs}
	setBody(body, "event_type", string(p.EventType))
	setBody(body, "start_date", p.StartDate)
	setBody(body, "end_date", p.EndDate)
	setBody(body, "entity_owner_name", string(p.EntityOwnerName))
	setBody(body, "record_updated_date_start", p.RecordUpdatedDateStart)
	setBody(body, "record_updated_date_end", p.RecordUpdatedDateEnd)
	return body, nil
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, strconv.Itoa(value))
	}
}

func setInt64(v url.Values, key string, value int64) {
	if value > 0 {
		v.Set(key, strconv.FormatInt(value, 10))
	}
}

func setFlag(v url.Values, key string, value *bool) {
	if value == nil {
		return
	}
	if *value {
		v.Set(key, "1")
	} else {
		v.Set(key, "0")
	}
}

func setBody(body map[string]any, key, value string) {
	if value != "" {
		body[key] = value
	}
}

// metricParams is implemented by the metric families' parameter types.
type metricParams interface {
	Values() url.Values
	BatchBody(parclIDs []int64) (map[string]any, error)
	paginate() bool
}

func (p MetricsParams) paginate() bool          { return p.AutoPaginate }
func (p PortfolioMetricsParams) paginate() bool { return p.AutoPaginate }
