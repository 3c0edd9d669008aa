package taxjar

import "github.com/shopspring/decimal"

// Order is a sales transaction recorded with TaxJar.
type Order struct {
	TransactionID   string          `json:"transaction_id"`
	UserID          int64           `json:"user_id"`
	TransactionDate string          `json:"transaction_date"`
	Provider        string          `json:"provider"`
	ExemptionType   string          `json:"exemption_type"`
	FromCountry     string          `json:"from_country"`
	FromZip         string          `json:"from_zip"`
	FromState       string          `json:"from_state"`
	FromCity        string          `json:"from_city"`
	FromStreet      string          `json:"from_street"`
	ToCountry       string          `json:"to_country"`
	ToZip           string          `json:"to_zip"`
	ToState         string          `json:"to_state"`
	ToCity          string          `json:"to_city"`
	ToStreet        string          `json:"to_street"`
	Amount          decimal.Decimal `json:"amount"`
	Shipping        decimal.Decimal `json:"shipping"`
	SalesTax        decimal.Decimal `json:"sales_tax"`
	LineItems       []LineItem      `json:"line_items"`
}

// LineItem is one line of an order or refund.
type LineItem struct {
	ID                string          `json:"id,omitempty" yaml:"id"`
	Quantity          decimal.Decimal `json:"quantity" yaml:"quantity"`
	ProductIdentifier string          `json:"product_identifier,omitempty" yaml:"product_identifier"`
	Description       string          `json:"description,omitempty" yaml:"description"`
	ProductTaxCode    string          `json:"product_tax_code,omitempty" yaml:"product_tax_code"`
	UnitPrice         decimal.Decimal `json:"unit_price" yaml:"unit_price"`
	Discount          decimal.Decimal `json:"discount" yaml:"discount"`
	SalesTax          decimal.Decimal `json:"sales_tax" yaml:"sales_tax"`
}
