package taxjar

// Validation is the result of a VAT number check.
type Validation struct {
	Valid         bool          `json:"valid"`
	Exists        bool          `json:"exists"`
	ViesAvailable bool          `json:"vies_available"`
	ViesResponse  *ViesResponse `json:"vies_response,omitempty"`
}

// ViesResponse is the raw answer of the EU VIES service.
type ViesResponse struct {
	CountryCode string `json:"country_code"`
	VatNumber   string `json:"vat_number"`
	RequestDate string `json:"request_date"`
	Valid       bool   `json:"valid"`
	Name        string `json:"name"`
	Address     string `json:"address"`
}
