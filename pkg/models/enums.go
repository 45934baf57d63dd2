package models

// PropertyType filters metrics by housing type.
type PropertyType string

const (
	PropertyTypeSingleFamily  PropertyType = "SINGLE_FAMILY"
	PropertyTypeCondo         PropertyType = "CONDO"
	PropertyTypeTownhouse     PropertyType = "TOWNHOUSE"
	PropertyTypeOther         PropertyType = "OTHER"
	PropertyTypeAllProperties PropertyType = "ALL_PROPERTIES"
)

// LocationType filters market search results.
type LocationType string

const (
	LocationTypeCounty  LocationType = "COUNTY"
	LocationTypeCity    LocationType = "CITY"
	LocationTypeZip5    LocationType = "ZIP5"
	LocationTypeCDP     LocationType = "CDP"
	LocationTypeVillage LocationType = "VILLAGE"
	LocationTypeTown    LocationType = "TOWN"
	LocationTypeCBSA    LocationType = "CBSA"
	LocationTypeAll     LocationType = "ALL"
)

// USRegion is a US Census division.
type USRegion string

const (
	RegionEastNorthCentral USRegion = "EAST_NORTH_CENTRAL"
	RegionEastSouthCentral USRegion = "EAST_SOUTH_CENTRAL"
	RegionMiddleAtlantic   USRegion = "MIDDLE_ATLANTIC"
	RegionMountain         USRegion = "MOUNTAIN"
	RegionNewEngland       USRegion = "NEW_ENGLAND"
	RegionPacific          USRegion = "PACIFIC"
	RegionSouthAtlantic    USRegion = "SOUTH_ATLANTIC"
	RegionWestNorthCentral USRegion = "WEST_NORTH_CENTRAL"
	RegionWestSouthCentral USRegion = "WEST_SOUTH_CENTRAL"
	RegionAll              USRegion = "ALL"
)

// SortBy is the ordering key for market search.
type SortBy string

const (
	SortByTotalPopulation     SortBy = "TOTAL_POPULATION"
	SortByMedianIncome        SortBy = "MEDIAN_INCOME"
	SortByCaseShiller20Market SortBy = "CASE_SHILLER_20_MARKET"
	SortByCaseShiller10Market SortBy = "CASE_SHILLER_10_MARKET"
	SortByPricefeedMarket     SortBy = "PRICEFEED_MARKET"
	SortByParclExchangeMarket SortBy = "PARCL_EXCHANGE_MARKET"
)

// SortOrder is the direction of a sorted search.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"
)

// PortfolioSize buckets single-family owners by the number of homes held.
type PortfolioSize string

const (
	PortfolioSize2To9     PortfolioSize = "PORTFOLIO_2_TO_9"
	PortfolioSize10To99   PortfolioSize = "PORTFOLIO_10_TO_99"
	PortfolioSize100To999 PortfolioSize = "PORTFOLIO_100_TO_999"
	PortfolioSize1000Plus PortfolioSize = "PORTFOLIO_1000_PLUS"
	PortfolioSizeAll      PortfolioSize = "ALL_PORTFOLIOS"
)

// EventType filters property event history.
type EventType string

const (
	EventTypeSale    EventType = "SALE"
	EventTypeListing EventType = "LISTING"
	EventTypeRental  EventType = "RENTAL"
	EventTypeAll     EventType = "ALL"
)

// EntityOwnerName names a large institutional owner.
type EntityOwnerName string

const (
	OwnerAMH                   EntityOwnerName = "AMH"
	OwnerTricon                EntityOwnerName = "TRICON"
	OwnerInvitationHomes       EntityOwnerName = "INVITATION_HOMES"
	OwnerHomePartnersOfAmerica EntityOwnerName = "HOME_PARTNERS_OF_AMERICA"
	OwnerProgressResidential   EntityOwnerName = "PROGRESS_RESIDENTIAL"
	OwnerFirstKeyHomes         EntityOwnerName = "FIRSTKEY_HOMES"
	OwnerAmherst               EntityOwnerName = "AMHERST"
	OwnerMaymontHomes          EntityOwnerName = "MAYMONT_HOMES"
	OwnerVineBrookHomes        EntityOwnerName = "VINEBROOK_HOMES"
	OwnerSFR3                  EntityOwnerName = "SFR3"
	OwnerMyCommunityHomes      EntityOwnerName = "MY_COMMUNITY_HOMES"
	OwnerBlackstone            EntityOwnerName = "BLACKSTONE"
	OwnerBX                    EntityOwnerName = "BX"
	OwnerOpendoor              EntityOwnerName = "OPENDOOR"
	OwnerOfferpad              EntityOwnerName = "OFFERPAD"
)
