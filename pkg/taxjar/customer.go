package taxjar

// Customer is an exempt customer record.
type Customer struct {
	CustomerID    string         `json:"customer_id"`
	ExemptionType string         `json:"exemption_type"`
	ExemptRegions []ExemptRegion `json:"exempt_regions"`
	Name          string         `json:"name"`
	Country       string         `json:"country"`
	State         string         `json:"state"`
	Zip           string         `json:"zip"`
	City          string         `json:"city"`
	Street        string         `json:"street"`
}

type ExemptRegion struct {
	Country string `json:"country" yaml:"country"`
	State   string `json:"state" yaml:"state"`
}
