package taxjar

import "github.com/shopspring/decimal"

// Rate holds the sales tax rates for one location. US locations populate the
// state, county and city fields; EU locations the standard and reduced rates.
type Rate struct {
	Zip                   string          `json:"zip"`
	Country               string          `json:"country"`
	CountryRate           decimal.Decimal `json:"country_rate"`
	State                 string          `json:"state"`
	StateRate             decimal.Decimal `json:"state_rate"`
	County                string          `json:"county"`
	CountyRate            decimal.Decimal `json:"county_rate"`
	City                  string          `json:"city"`
	CityRate              decimal.Decimal `json:"city_rate"`
	CombinedDistrictRate  decimal.Decimal `json:"combined_district_rate"`
	CombinedRate          decimal.Decimal `json:"combined_rate"`
	FreightTaxable        bool            `json:"freight_taxable"`
	Name                  string          `json:"name"`
	StandardRate          decimal.Decimal `json:"standard_rate"`
	ReducedRate           decimal.Decimal `json:"reduced_rate"`
	SuperReducedRate      decimal.Decimal `json:"super_reduced_rate"`
	ParkingRate           decimal.Decimal `json:"parking_rate"`
	DistanceSaleThreshold decimal.Decimal `json:"distance_sale_threshold"`
}
