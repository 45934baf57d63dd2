package models

// HousingEventCounts is a monthly count of housing events.
type HousingEventCounts struct {
	Date               string `json:"date"`
	Sales              *int64 `json:"sales"`
	NewListingsForSale *int64 `json:"new_listings_for_sale"`
	NewRentalListings  *int64 `json:"new_rental_listings"`
}

// HousingStock counts housing units by property type.
type HousingStock struct {
	Date          string `json:"date"`
	SingleFamily  *int64 `json:"single_family"`
	Condo         *int64 `json:"condo"`
	Townhouse     *int64 `json:"townhouse"`
	Other         *int64 `json:"other"`
	AllProperties *int64 `json:"all_properties"`
}

// HousingEventPrices holds price distributions per event type.
type HousingEventPrices struct {
	Date               string      `json:"date"`
	Price              *PriceStats `json:"price"`
	PricePerSquareFoot *PriceStats `json:"price_per_square_foot"`
}

// PriceStats summarizes a price distribution.
type PriceStats struct {
	Median            *EventPrices `json:"median"`
	StandardDeviation *EventPrices `json:"standard_deviation"`
	Percentile20th    *EventPrices `json:"percentile_20th"`
	Percentile80th    *EventPrices `json:"percentile_80th"`
}

// EventPrices is one statistic broken down by event type.
type EventPrices struct {
	Sales              *float64 `json:"sales"`
	NewListingsForSale *float64 `json:"new_listings_for_sale"`
	NewRentalListings  *float64 `json:"new_rental_listings"`
}

// AllCash describes cash-only transactions.
type AllCash struct {
	Date           string   `json:"date"`
	CountSales     *int64   `json:"count_sales"`
	PctSales       *float64 `json:"pct_sales"`
	CountTransfers *int64   `json:"count_transfers"`
	PctTransfers   *float64 `json:"pct_transfers"`
}

// HousingEventPropertyAttributes holds median attributes of transacted homes.
type HousingEventPropertyAttributes struct {
	Date      string   `json:"date"`
	Beds      *int64   `json:"beds"`
	Baths     *float64 `json:"baths"`
	Sqft      *int64   `json:"sqft"`
	LotSize   *int64   `json:"lot_size"`
	YearBuilt *int64   `json:"year_built"`
}

// PriceFeedEntry is one daily price feed value.
type PriceFeedEntry struct {
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	PriceFeedType *string `json:"price_feed_type"`
}

// RollingCounts are counts over trailing windows.
type RollingCounts struct {
	Rolling7Day  *int64 `json:"rolling_7_day"`
	Rolling30Day *int64 `json:"rolling_30_day"`
	Rolling60Day *int64 `json:"rolling_60_day"`
	Rolling90Day *int64 `json:"rolling_90_day"`
}

// RollingPercentages are percentages over trailing windows.
type RollingPercentages struct {
	Rolling7Day  *float64 `json:"rolling_7_day"`
	Rolling30Day *float64 `json:"rolling_30_day"`
	Rolling60Day *float64 `json:"rolling_60_day"`
	Rolling90Day *float64 `json:"rolling_90_day"`
}

// InvestorHousingStockOwnership is the investor-owned share of housing stock.
type InvestorHousingStockOwnership struct {
	Date               string   `json:"date"`
	InvestorOwnedCount *int64   `json:"count"`
	InvestorOwnedPct   *float64 `json:"pct_ownership"`
}

// InvestorPurchaseToSaleRatio compares investor acquisitions and dispositions.
type InvestorPurchaseToSaleRatio struct {
	Date                string   `json:"date"`
	Acquisitions        *int64   `json:"acquisitions"`
	Dispositions        *int64   `json:"dispositions"`
	PurchaseToSaleRatio *float64 `json:"purchase_to_sale_ratio"`
}

// InvestorHousingEventCounts counts investor housing events.
type InvestorHousingEventCounts struct {
	Date               string `json:"date"`
	Acquisitions       *int64 `json:"acquisitions"`
	Dispositions       *int64 `json:"dispositions"`
	NewListingsForSale *int64 `json:"new_listings_for_sale"`
	NewRentalListings  *int64 `json:"new_rental_listings"`
}

// InvestorNewListingsRollingCounts tracks new investor for-sale listings.
type InvestorNewListingsRollingCounts struct {
	Date             string              `json:"date"`
	Count            *RollingCounts      `json:"count"`
	PctForSaleMarket *RollingPercentages `json:"pct_for_sale_market"`
}

// ForSaleInventory is the count of homes listed for sale.
type ForSaleInventory struct {
	Date             string `json:"date"`
	ForSaleInventory *int64 `json:"for_sale_inventory"`
}

// ForSaleInventoryPriceChanges describes price movement of listed homes.
type ForSaleInventoryPriceChanges struct {
	Date                    string   `json:"date"`
	CountPriceChange        *int64   `json:"count_price_change"`
	CountPriceDrop          *int64   `json:"count_price_drop"`
	MedianDaysBtPriceChange *float64 `json:"median_days_bt_change"`
	MedianPriceChange       *float64 `json:"median_price_change"`
	MedianPctPriceChange    *float64 `json:"median_pct_price_change"`
	PctPriceChange          *float64 `json:"pct_inventory_price_change"`
	PctPriceDrop            *float64 `json:"pct_inventory_price_drop"`
}

// NewListingsRollingCounts counts new for-sale listings over trailing windows.
type NewListingsRollingCounts struct {
	Date              string `json:"date"`
	Rolling7DayCount  *int64 `json:"rolling_7_day"`
	Rolling30DayCount *int64 `json:"rolling_30_day"`
	Rolling60DayCount *int64 `json:"rolling_60_day"`
	Rolling90DayCount *int64 `json:"rolling_90_day"`
}

// GrossYield is annual rent over median sale price.
type GrossYield struct {
	Date       string   `json:"date"`
	GrossYield *float64 `json:"gross_yield"`
}

// RentalUnitsConcentration is the share of housing stock that is rented.
type RentalUnitsConcentration struct {
	Date                     string   `json:"date"`
	RentalUnitsConcentration *float64 `json:"rental_units_concentration"`
}

// RentalNewListingsRollingCounts counts new rental listings over trailing windows.
type RentalNewListingsRollingCounts struct {
	Date              string `json:"date"`
	Rolling7DayCount  *int64 `json:"rolling_7_day"`
	Rolling30DayCount *int64 `json:"rolling_30_day"`
	Rolling60DayCount *int64 `json:"rolling_60_day"`
	Rolling90DayCount *int64 `json:"rolling_90_day"`
}

// PortfolioSizeBreakdown is a count per portfolio size bucket.
type PortfolioSizeBreakdown struct {
	Portfolio2To9     *int64 `json:"portfolio_2_to_9"`
	Portfolio10To99   *int64 `json:"portfolio_10_to_99"`
	Portfolio100To999 *int64 `json:"portfolio_100_to_999"`
	Portfolio1000Plus *int64 `json:"portfolio_1000_plus"`
	AllPortfolios     *int64 `json:"all_portfolios"`
}

// PortfolioSizePctBreakdown is a percentage per portfolio size bucket.
type PortfolioSizePctBreakdown struct {
	Portfolio2To9     *float64 `json:"portfolio_2_to_9"`
	Portfolio10To99   *float64 `json:"portfolio_10_to_99"`
	Portfolio100To999 *float64 `json:"portfolio_100_to_999"`
	Portfolio1000Plus *float64 `json:"portfolio_1000_plus"`
	AllPortfolios     *float64 `json:"all_portfolios"`
}

// PortfolioStockOwnership is single-family ownership by portfolio size.
type PortfolioStockOwnership struct {
	Date              string                     `json:"date"`
	Count             *PortfolioSizeBreakdown    `json:"count"`
	PctSFHousingStock *PortfolioSizePctBreakdown `json:"pct_sf_housing_stock"`
}

// PortfolioHousingEventCounts counts portfolio holder housing events.
type PortfolioHousingEventCounts struct {
	Date               string `json:"date"`
	Acquisitions       *int64 `json:"acquisitions"`
	Dispositions       *int64 `json:"dispositions"`
	NewListingsForSale *int64 `json:"new_listings_for_sale"`
	NewRentalListings  *int64 `json:"new_rental_listings"`
	Transfers          *int64 `json:"transfers"`
}

// PortfolioNewListingsRollingCounts tracks portfolio for-sale listings.
type PortfolioNewListingsRollingCounts struct {
	Date               string              `json:"date"`
	Count              *RollingCounts      `json:"count"`
	PctSFForSaleMarket *RollingPercentages `json:"pct_sf_for_sale_market"`
}

// PortfolioRentalListingsRollingCounts tracks portfolio rental listings.
type PortfolioRentalListingsRollingCounts struct {
	Date               string              `json:"date"`
	Count              *RollingCounts      `json:"count"`
	PctSFForRentMarket *RollingPercentages `json:"pct_sf_for_rent_market"`
}
