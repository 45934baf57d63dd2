package models

// Property is a parcel returned by v1 property search.
type Property struct {
	ParclPropertyID   int64    `json:"parcl_property_id"`
	Address           *string  `json:"address"`
	Unit              *string  `json:"unit"`
	City              *string  `json:"city"`
	ZipCode           *string  `json:"zip_code"`
	StateAbbreviation *string  `json:"state_abbreviation"`
	County            *string  `json:"county"`
	CBSA              *string  `json:"cbsa"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	PropertyType      *string  `json:"property_type"`
	Bedrooms          *int     `json:"bedrooms"`
	Bathrooms         *float64 `json:"bathrooms"`
	SquareFootage     *int64   `json:"square_footage"`
	YearBuilt         *int     `json:"year_built"`

	CBSAParclID   *int64 `json:"cbsa_parcl_id"`
	CountyParclID *int64 `json:"county_parcl_id"`
	CityParclID   *int64 `json:"city_parcl_id"`
	ZipParclID    *int64 `json:"zip_parcl_id"`

	EventCount *int64 `json:"event_count"`

	// Flags below are 0 or 1.
	EventHistorySaleFlag       *int `json:"event_history_sale_flag"`
	EventHistoryRentalFlag     *int `json:"event_history_rental_flag"`
	EventHistoryListingFlag    *int `json:"event_history_listing_flag"`
	CurrentNewConstructionFlag *int `json:"current_new_construction_flag"`
	CurrentOwnerOccupiedFlag   *int `json:"current_owner_occupied_flag"`
	CurrentInvestorOwnedFlag   *int `json:"current_investor_owned_flag"`
	CurrentOnMarketFlag        *int `json:"current_on_market_flag"`
	CurrentOnMarketRentalFlag  *int `json:"current_on_market_rental_flag"`

	CurrentEntityOwnerName *string `json:"current_entity_owner_name"`
	RecordAddedDate        *string `json:"record_added_date"`
}

// PropertyWithEvents is one property of an event history response.
type PropertyWithEvents struct {
	ParclPropertyID  int64             `json:"parcl_property_id"`
	PropertyMetadata *PropertyMetadata `json:"property_metadata"`
	Events           []PropertyEvent   `json:"events"`
}

// PropertyMetadata describes the physical property.
type PropertyMetadata struct {
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	Zip           *string  `json:"zip"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *float64 `json:"bathrooms"`
	SquareFootage *int64   `json:"square_footage"`
	YearBuilt     *int     `json:"year_built"`
	PropertyType  *string  `json:"property_type"`
}

// PropertyEvent is a sale, listing or rental event.
type PropertyEvent struct {
	EventType           *string `json:"event_type"`
	EventName           *string `json:"event_name"`
	EventDate           *string `json:"event_date"`
	Price               *int64  `json:"price"`
	EntityOwnerName     *string `json:"entity_owner_name"`
	InvestorFlag        *int    `json:"investor_flag"`
	OwnerOccupiedFlag   *int    `json:"owner_occupied_flag"`
	NewConstructionFlag *int    `json:"new_construction_flag"`
	RecordUpdatedDate   *string `json:"record_updated_date"`
}

// PropertyV2 is a property returned by v2 search.
type PropertyV2 struct {
	ParclPropertyID  int64               `json:"parcl_property_id"`
	PropertyMetadata *PropertyV2Metadata `json:"property_metadata"`
	Events           []PropertyV2Event   `json:"events"`
}

// PropertyV2Metadata is the richer v2 property description.
type PropertyV2Metadata struct {
	Bathrooms    *float64 `json:"bathrooms"`
	Bedrooms     *int     `json:"bedrooms"`
	SqFt         *int64   `json:"sq_ft"`
	YearBuilt    *int     `json:"year_built"`
	PropertyType *string  `json:"property_type"`
	Address1     *string  `json:"address1"`
	Address2     *string  `json:"address2"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Zip5         *string  `json:"zip5"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	CityName     *string  `json:"city_name"`
	CountyName   *string  `json:"county_name"`
	MetroName    *string  `json:"metro_name"`

	RecordAddedDate            *string `json:"record_added_date"`
	CurrentOnMarketFlag        *int    `json:"current_on_market_flag"`
	CurrentOnMarketRentalFlag  *int    `json:"current_on_market_rental_flag"`
	CurrentNewConstructionFlag *int    `json:"current_new_construction_flag"`
	CurrentOwnerOccupiedFlag   *int    `json:"current_owner_occupied_flag"`
	CurrentInvestorOwnedFlag   *int    `json:"current_investor_owned_flag"`
	CurrentEntityOwnerName     *string `json:"current_entity_owner_name"`
}

// PropertyV2Event is a v2 property event.
type PropertyV2Event struct {
	EventType           *string `json:"event_type"`
	EventName           *string `json:"event_name"`
	EventDate           *string `json:"event_date"`
	EntityOwnerName     *string `json:"entity_owner_name"`
	TrueSaleIndex       *int    `json:"true_sale_index"`
	Price               *int64  `json:"price"`
	TransferIndex       *int    `json:"transfer_index"`
	InvestorFlag        *int    `json:"investor_flag"`
	OwnerOccupiedFlag   *int    `json:"owner_occupied_flag"`
	NewConstructionFlag *int    `json:"new_construction_flag"`
	CurrentOwnerFlag    *int    `json:"current_owner_flag"`
	RecordUpdatedDate   *string `json:"record_updated_date"`
}

// AddressSearchRequest is one address to resolve to a property ID.
type AddressSearchRequest struct {
	Address           string `json:"address"`
	City              string `json:"city"`
	StateAbbreviation string `json:"state_abbreviation"`
	ZipCode           string `json:"zip_code"`
}

// PropertyV2SearchRequest is the body of a v2 property search.
// Nil sections are omitted from the request.
type PropertyV2SearchRequest struct {
	ParclIDs         []int64          `json:"parcl_ids,omitempty"`
	ParclPropertyIDs []int64          `json:"parcl_property_ids,omitempty"`
	GeoCoordinates   *GeoCoordinates  `json:"geo_coordinates,omitempty"`
	PropertyFilters  *PropertyFilters `json:"property_filters,omitempty"`
	EventFilters     *V2EventFilters  `json:"event_filters,omitempty"`
	OwnerFilters     *OwnerFilters    `json:"owner_filters,omitempty"`
}

// IsEmpty reports whether the request selects no properties at all.
func (r PropertyV2SearchRequest) IsEmpty() bool {
	return len(r.ParclIDs) == 0 && len(r.ParclPropertyIDs) == 0 && r.GeoCoordinates == nil
}

// GeoCoordinates selects properties within a radius.
type GeoCoordinates struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	RadiusMiles float64 `json:"radius_miles"`
}

// PropertyFilters narrows v2 search by property attributes.
type PropertyFilters struct {
	IncludePropertyDetails     *bool    `json:"include_property_details,omitempty"`
	PropertyTypes              []string `json:"property_types,omitempty"`
	MinBeds                    *int     `json:"min_beds,omitempty"`
	MaxBeds                    *int     `json:"max_beds,omitempty"`
	MinBaths                   *float64 `json:"min_baths,omitempty"`
	MaxBaths                   *float64 `json:"max_baths,omitempty"`
	MinSqft                    *int64   `json:"min_sqft,omitempty"`
	MaxSqft                    *int64   `json:"max_sqft,omitempty"`
	MinYearBuilt               *int     `json:"min_year_built,omitempty"`
	MaxYearBuilt               *int     `json:"max_year_built,omitempty"`
	CurrentEntityOwnerName     *string  `json:"current_entity_owner_name,omitempty"`
	CurrentOwnerOccupiedFlag   *bool    `json:"current_owner_occupied_flag,omitempty"`
	CurrentInvestorOwnedFlag   *bool    `json:"current_investor_owned_flag,omitempty"`
	CurrentOnMarketFlag        *bool    `json:"current_on_market_flag,omitempty"`
	CurrentOnMarketRentalFlag  *bool    `json:"current_on_market_rental_flag,omitempty"`
	CurrentNewConstructionFlag *bool    `json:"current_new_construction_flag,omitempty"`
	MinRecordAddedDate         *string  `json:"min_record_added_date,omitempty"`
	MaxRecordAddedDate         *string  `json:"max_record_added_date,omitempty"`
}

// V2EventFilters narrows v2 search by event attributes.
type V2EventFilters struct {
	EventNames              []string `json:"event_names,omitempty"`
	MinEventDate            *string  `json:"min_event_date,omitempty"`
	MaxEventDate            *string  `json:"max_event_date,omitempty"`
	MinEventPrice           *int64   `json:"min_event_price,omitempty"`
	MaxEventPrice           *int64   `json:"max_event_price,omitempty"`
	IncludeEvents           *bool    `json:"include_events,omitempty"`
	IncludeFullEventHistory *bool    `json:"include_full_event_history,omitempty"`
	IsNewConstruction       *bool    `json:"is_new_construction,omitempty"`
	MinRecordUpdatedDate    *string  `json:"min_record_updated_date,omitempty"`
	MaxRecordUpdatedDate    *string  `json:"max_record_updated_date,omitempty"`
}

// OwnerFilters narrows v2 search by ownership.
type OwnerFilters struct {
	OwnerName        []string `json:"owner_name,omitempty"`
	EntitySellerName []string `json:"entity_seller_name,omitempty"`
	IsCurrentOwner   *bool    `json:"is_current_owner,omitempty"`
	IsInvestorOwned  *bool    `json:"is_investor_owned,omitempty"`
	IsOwnerOccupied  *bool    `json:"is_owner_occupied,omitempty"`
}
