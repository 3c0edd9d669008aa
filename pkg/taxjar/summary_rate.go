package taxjar

import "github.com/shopspring/decimal"

// SummaryRate is the minimum and average rate for one region.
type SummaryRate struct {
	CountryCode string            `json:"country_code"`
	Country     string            `json:"country"`
	RegionCode  string            `json:"region_code"`
	Region      string            `json:"region"`
	MinimumRate SummaryRateDetail `json:"minimum_rate"`
	AverageRate SummaryRateDetail `json:"average_rate"`
}

type SummaryRateDetail struct {
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
}
