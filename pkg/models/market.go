package models

// Market is a housing market returned by market search.
type Market struct {
	ParclID           int64   `json:"parcl_id"`
	Name              string  `json:"name"`
	StateAbbreviation *string `json:"state_abbreviation"`
	StateFIPSCode     *string `json:"state_fips_code"`
	LocationType      string  `json:"location_type"`
	TotalPopulation   *int64  `json:"total_population"`
	MedianIncome      *int64  `json:"median_income"`

	// Flags below are 0 or 1.
	ParclExchangeMarket *int `json:"parcl_exchange_market"`
	PricefeedMarket     *int `json:"pricefeed_market"`
	CaseShiller10Market *int `json:"case_shiller_10_market"`
	CaseShiller20Market *int `json:"case_shiller_20_market"`

	Country *string `json:"country"`
	GeoID   *string `json:"geoid"`
	Region  *string `json:"region"`
}

// IsExchangeMarket reports whether the market trades on the Parcl exchange.
func (m Market) IsExchangeMarket() bool {
	return flagSet(m.ParclExchangeMarket)
}

// HasPriceFeed reports whether the market publishes a daily price feed.
func (m Market) HasPriceFeed() bool {
	return flagSet(m.PricefeedMarket)
}

func flagSet(v *int) bool {
	return v != nil && *v == 1
}
