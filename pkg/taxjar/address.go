package taxjar

// Address is one candidate returned by address validation.
type Address struct {
	Zip     string `json:"zip"`
	Street  string `json:"street"`
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}
