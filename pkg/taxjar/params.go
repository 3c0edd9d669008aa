package taxjar

import (
	"net/url"

	"github.com/shopspring/decimal"
)

// TaxParams is the input of TaxForOrder. Shipping is required by the service;
// Amount may be left nil when line items are given.
type TaxParams struct {
	FromCountry    string           `json:"from_country,omitempty" yaml:"from_country"`
	FromZip        string           `json:"from_zip,omitempty" yaml:"from_zip"`
	FromState      string           `json:"from_state,omitempty" yaml:"from_state"`
	FromCity       string           `json:"from_city,omitempty" yaml:"from_city"`
	FromStreet     string           `json:"from_street,omitempty" yaml:"from_street"`
	ToCountry      string           `json:"to_country,omitempty" yaml:"to_country"`
	ToZip          string           `json:"to_zip,omitempty" yaml:"to_zip"`
	ToState        string           `json:"to_state,omitempty" yaml:"to_state"`
	ToCity         string           `json:"to_city,omitempty" yaml:"to_city"`
	ToStreet       string           `json:"to_street,omitempty" yaml:"to_street"`
	Amount         *decimal.Decimal `json:"amount,omitempty" yaml:"amount"`
	Shipping       decimal.Decimal  `json:"shipping" yaml:"shipping"`
	CustomerID     string           `json:"customer_id,omitempty" yaml:"customer_id"`
	ExemptionType  string           `json:"exemption_type,omitempty" yaml:"exemption_type"`
	NexusAddresses []NexusAddress   `json:"nexus_addresses,omitempty" yaml:"nexus_addresses"`
	LineItems      []TaxLineItem    `json:"line_items,omitempty" yaml:"line_items"`
}

// NexusAddress is a location where the seller has nexus, sent with a tax
// calculation to override the account's nexus settings.
type NexusAddress struct {
	ID      string `json:"id,omitempty" yaml:"id"`
	Country string `json:"country,omitempty" yaml:"country"`
	Zip     string `json:"zip,omitempty" yaml:"zip"`
	State   string `json:"state,omitempty" yaml:"state"`
	City    string `json:"city,omitempty" yaml:"city"`
	Street  string `json:"street,omitempty" yaml:"street"`
}

// TaxLineItem is one line of a tax calculation.
type TaxLineItem struct {
	ID             string           `json:"id,omitempty" yaml:"id"`
	Quantity       int              `json:"quantity,omitempty" yaml:"quantity"`
	ProductTaxCode string           `json:"product_tax_code,omitempty" yaml:"product_tax_code"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty" yaml:"unit_price"`
	Discount       *decimal.Decimal `json:"discount,omitempty" yaml:"discount"`
}

// OrderParams is the input of CreateOrder and UpdateOrder.
type OrderParams struct {
	TransactionID   string           `json:"transaction_id" yaml:"transaction_id"`
	TransactionDate string           `json:"transaction_date,omitempty" yaml:"transaction_date"`
	Provider        string           `json:"provider,omitempty" yaml:"provider"`
	ExemptionType   string           `json:"exemption_type,omitempty" yaml:"exemption_type"`
	FromCountry     string           `json:"from_country,omitempty" yaml:"from_country"`
	FromZip         string           `json:"from_zip,omitempty" yaml:"from_zip"`
	FromState       string           `json:"from_state,omitempty" yaml:"from_state"`
	FromCity        string           `json:"from_city,omitempty" yaml:"from_city"`
	FromStreet      string           `json:"from_street,omitempty" yaml:"from_street"`
	ToCountry       string           `json:"to_country,omitempty" yaml:"to_country"`
	ToZip           string           `json:"to_zip,omitempty" yaml:"to_zip"`
	ToState         string           `json:"to_state,omitempty" yaml:"to_state"`
	ToCity          string           `json:"to_city,omitempty" yaml:"to_city"`
	ToStreet        string           `json:"to_street,omitempty" yaml:"to_street"`
	Amount          *decimal.Decimal `json:"amount,omitempty" yaml:"amount"`
	Shipping        *decimal.Decimal `json:"shipping,omitempty" yaml:"shipping"`
	SalesTax        *decimal.Decimal `json:"sales_tax,omitempty" yaml:"sales_tax"`
	CustomerID      string           `json:"customer_id,omitempty" yaml:"customer_id"`
	LineItems       []LineItem       `json:"line_items,omitempty" yaml:"line_items"`
}

// RefundParams is the input of CreateRefund and UpdateRefund.
type RefundParams struct {
	OrderParams            `yaml:",inline"`
	TransactionReferenceID string `json:"transaction_reference_id,omitempty" yaml:"transaction_reference_id"`
}

// ListTransactionsParams filters ListOrders and ListRefunds. Either a single
// TransactionDate or a From/To range is expected.
type ListTransactionsParams struct {
	TransactionDate     string `json:"transaction_date,omitempty" yaml:"transaction_date"`
	FromTransactionDate string `json:"from_transaction_date,omitempty" yaml:"from_transaction_date"`
	ToTransactionDate   string `json:"to_transaction_date,omitempty" yaml:"to_transaction_date"`
	Provider            string `json:"provider,omitempty" yaml:"provider"`
}

func (p ListTransactionsParams) Values() url.Values {
	values := url.Values{}
	setIfNotEmpty(values, "transaction_date", p.TransactionDate)
	setIfNotEmpty(values, "from_transaction_date", p.FromTransactionDate)
	setIfNotEmpty(values, "to_transaction_date", p.ToTransactionDate)
	setIfNotEmpty(values, "provider", p.Provider)
	return values
}

// RateParams narrows a rate lookup beyond the zip code.
type RateParams struct {
	Country string `json:"country,omitempty" yaml:"country"`
	State   string `json:"state,omitempty" yaml:"state"`
	City    string `json:"city,omitempty" yaml:"city"`
	Street  string `json:"street,omitempty" yaml:"street"`
}

func (p RateParams) Values() url.Values {
	values := url.Values{}
	setIfNotEmpty(values, "country", p.Country)
	setIfNotEmpty(values, "state", p.State)
	setIfNotEmpty(values, "city", p.City)
	setIfNotEmpty(values, "street", p.Street)
	return values
}

// ValidationParams is the input of Validate.
type ValidationParams struct {
	VAT string `json:"vat" yaml:"vat"`
}

func (p ValidationParams) Values() url.Values {
	values := url.Values{}
	setIfNotEmpty(values, "vat", p.VAT)
	return values
}

// AddressParams is the input of ValidateAddress.
type AddressParams struct {
	Country string `json:"country,omitempty" yaml:"country"`
	State   string `json:"state,omitempty" yaml:"state"`
	Zip     string `json:"zip,omitempty" yaml:"zip"`
	City    string `json:"city,omitempty" yaml:"city"`
	Street  string `json:"street,omitempty" yaml:"street"`
}

// CustomerParams is the input of CreateCustomer and UpdateCustomer.
type CustomerParams struct {
	CustomerID    string         `json:"customer_id" yaml:"customer_id"`
	ExemptionType string         `json:"exemption_type,omitempty" yaml:"exemption_type"`
	Name          string         `json:"name,omitempty" yaml:"name"`
	ExemptRegions []ExemptRegion `json:"exempt_regions,omitempty" yaml:"exempt_regions"`
	Country       string         `json:"country,omitempty" yaml:"country"`
	State         string         `json:"state,omitempty" yaml:"state"`
	Zip           string         `json:"zip,omitempty" yaml:"zip"`
	City          string         `json:"city,omitempty" yaml:"city"`
	Street        string         `json:"street,omitempty" yaml:"street"`
}

func setIfNotEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
