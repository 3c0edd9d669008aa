package taxjar

import "github.com/shopspring/decimal"

// Tax is the result of a tax calculation for one order.
type Tax struct {
	OrderTotalAmount decimal.Decimal `json:"order_total_amount"`
	Shipping         decimal.Decimal `json:"shipping"`
	TaxableAmount    decimal.Decimal `json:"taxable_amount"`
	AmountToCollect  decimal.Decimal `json:"amount_to_collect"`
	Rate             decimal.Decimal `json:"rate"`
	HasNexus         bool            `json:"has_nexus"`
	FreightTaxable   bool            `json:"freight_taxable"`
	TaxSource        string          `json:"tax_source"`
	ExemptionType    string          `json:"exemption_type,omitempty"`
	Jurisdictions    *Jurisdictions  `json:"jurisdictions,omitempty"`
	Breakdown        *Breakdown      `json:"breakdown,omitempty"`
}

// Jurisdictions names the places a tax was computed for.
type Jurisdictions struct {
	Country string `json:"country"`
	State   string `json:"state"`
	County  string `json:"county"`
	City    string `json:"city"`
}

// Breakdown splits a tax by jurisdiction. Fields of jurisdictions that do not
// apply to the order are zero.
type Breakdown struct {
	TaxableAmount   decimal.Decimal `json:"taxable_amount"`
	TaxCollectable  decimal.Decimal `json:"tax_collectable"`
	CombinedTaxRate decimal.Decimal `json:"combined_tax_rate"`

	StateTaxableAmount  decimal.Decimal `json:"state_taxable_amount"`
	StateTaxRate        decimal.Decimal `json:"state_tax_rate"`
	StateTaxCollectable decimal.Decimal `json:"state_tax_collectable"`

	CountyTaxableAmount  decimal.Decimal `json:"county_taxable_amount"`
	CountyTaxRate        decimal.Decimal `json:"county_tax_rate"`
	CountyTaxCollectable decimal.Decimal `json:"county_tax_collectable"`

	CityTaxableAmount  decimal.Decimal `json:"city_taxable_amount"`
	CityTaxRate        decimal.Decimal `json:"city_tax_rate"`
	CityTaxCollectable decimal.Decimal `json:"city_tax_collectable"`

	SpecialDistrictTaxableAmount  decimal.Decimal `json:"special_district_taxable_amount"`
	SpecialTaxRate                decimal.Decimal `json:"special_tax_rate"`
	SpecialDistrictTaxCollectable decimal.Decimal `json:"special_district_tax_collectable"`

	GSTTaxableAmount decimal.Decimal `json:"gst_taxable_amount"`
	GSTTaxRate       decimal.Decimal `json:"gst_tax_rate"`
	GST              decimal.Decimal `json:"gst"`
	PSTTaxableAmount decimal.Decimal `json:"pst_taxable_amount"`
	PSTTaxRate       decimal.Decimal `json:"pst_tax_rate"`
	PST              decimal.Decimal `json:"pst"`
	QSTTaxableAmount decimal.Decimal `json:"qst_taxable_amount"`
	QSTTaxRate       decimal.Decimal `json:"qst_tax_rate"`
	QST              decimal.Decimal `json:"qst"`

	CountryTaxableAmount  decimal.Decimal `json:"country_taxable_amount"`
	CountryTaxRate        decimal.Decimal `json:"country_tax_rate"`
	CountryTaxCollectable decimal.Decimal `json:"country_tax_collectable"`

	Shipping  *ShippingBreakdown  `json:"shipping,omitempty"`
	LineItems []LineItemBreakdown `json:"line_items,omitempty"`
}

// ShippingBreakdown is the part of a Breakdown that applies to shipping.
type ShippingBreakdown struct {
	TaxableAmount   decimal.Decimal `json:"taxable_amount"`
	TaxCollectable  decimal.Decimal `json:"tax_collectable"`
	CombinedTaxRate decimal.Decimal `json:"combined_tax_rate"`

	StateTaxableAmount decimal.Decimal `json:"state_taxable_amount"`
	StateSalesTaxRate  decimal.Decimal `json:"state_sales_tax_rate"`
	StateAmount        decimal.Decimal `json:"state_amount"`

	CountyTaxableAmount decimal.Decimal `json:"county_taxable_amount"`
	CountyTaxRate       decimal.Decimal `json:"county_tax_rate"`
	CountyAmount        decimal.Decimal `json:"county_amount"`

	CityTaxableAmount decimal.Decimal `json:"city_taxable_amount"`
	CityTaxRate       decimal.Decimal `json:"city_tax_rate"`
	CityAmount        decimal.Decimal `json:"city_amount"`

	SpecialTaxableAmount  decimal.Decimal `json:"special_taxable_amount"`
	SpecialTaxRate        decimal.Decimal `json:"special_tax_rate"`
	SpecialDistrictAmount decimal.Decimal `json:"special_district_amount"`

	GSTTaxableAmount decimal.Decimal `json:"gst_taxable_amount"`
	GSTTaxRate       decimal.Decimal `json:"gst_tax_rate"`
	GST              decimal.Decimal `json:"gst"`
	PSTTaxableAmount decimal.Decimal `json:"pst_taxable_amount"`
	PSTTaxRate       decimal.Decimal `json:"pst_tax_rate"`
	PST              decimal.Decimal `json:"pst"`
	QSTTaxableAmount decimal.Decimal `json:"qst_taxable_amount"`
	QSTTaxRate       decimal.Decimal `json:"qst_tax_rate"`
	QST              decimal.Decimal `json:"qst"`

	CountryTaxableAmount  decimal.Decimal `json:"country_taxable_amount"`
	CountryTaxRate        decimal.Decimal `json:"country_tax_rate"`
	CountryTaxCollectable decimal.Decimal `json:"country_tax_collectable"`
}

// LineItemBreakdown is the part of a Breakdown that applies to one line item.
// ID echoes the caller's line item id.
type LineItemBreakdown struct {
	ID              string          `json:"id"`
	TaxableAmount   decimal.Decimal `json:"taxable_amount"`
	TaxCollectable  decimal.Decimal `json:"tax_collectable"`
	CombinedTaxRate decimal.Decimal `json:"combined_tax_rate"`

	StateTaxableAmount decimal.Decimal `json:"state_taxable_amount"`
	StateSalesTaxRate  decimal.Decimal `json:"state_sales_tax_rate"`
	StateAmount        decimal.Decimal `json:"state_amount"`

	CountyTaxableAmount decimal.Decimal `json:"county_taxable_amount"`
	CountyTaxRate       decimal.Decimal `json:"county_tax_rate"`
	CountyAmount        decimal.Decimal `json:"county_amount"`

	CityTaxableAmount decimal.Decimal `json:"city_taxable_amount"`
	CityTaxRate       decimal.Decimal `json:"city_tax_rate"`
	CityAmount        decimal.Decimal `json:"city_amount"`

	SpecialDistrictTaxableAmount decimal.Decimal `json:"special_district_taxable_amount"`
	SpecialTaxRate               decimal.Decimal `json:"special_tax_rate"`
	SpecialDistrictAmount        decimal.Decimal `json:"special_district_amount"`

	GSTTaxableAmount decimal.Decimal `json:"gst_taxable_amount"`
	GSTTaxRate       decimal.Decimal `json:"gst_tax_rate"`
	GST              decimal.Decimal `json:"gst"`
	PSTTaxableAmount decimal.Decimal `json:"pst_taxable_amount"`
	PSTTaxRate       decimal.Decimal `json:"pst_tax_rate"`
	PST              decimal.Decimal `json:"pst"`
	QSTTaxableAmount decimal.Decimal `json:"qst_taxable_amount"`
	QSTTaxRate       decimal.Decimal `json:"qst_tax_rate"`
	QST              decimal.Decimal `json:"qst"`

	CountryTaxableAmount  decimal.Decimal `json:"country_taxable_amount"`
	CountryTaxRate        decimal.Decimal `json:"country_tax_rate"`
	CountryTaxCollectable decimal.Decimal `json:"country_tax_collectable"`
}

// Jurisdiction tells which family of fields a Breakdown carries.
type Jurisdiction string

const (
	JurisdictionUnknown       Jurisdiction = "unknown"
	JurisdictionUS            Jurisdiction = "us"
	JurisdictionCanada        Jurisdiction = "canada"
	JurisdictionInternational Jurisdiction = "international"
)

// Jurisdiction reports which variant of fields is populated. Canadian
// breakdowns are recognised first since they may also carry a combined rate.
func (b *Breakdown) Jurisdiction() Jurisdiction {
	if b == nil {
		return JurisdictionUnknown
	}
	switch {
	case anyNonZero(b.GSTTaxableAmount, b.GSTTaxRate, b.GST, b.PSTTaxableAmount, b.PSTTaxRate, b.PST,
		b.QSTTaxableAmount, b.QSTTaxRate, b.QST):
		return JurisdictionCanada
	case anyNonZero(b.StateTaxableAmount, b.StateTaxRate, b.StateTaxCollectable,
		b.CountyTaxableAmount, b.CountyTaxRate, b.CountyTaxCollectable,
		b.CityTaxableAmount, b.CityTaxRate, b.CityTaxCollectable,
		b.SpecialDistrictTaxableAmount, b.SpecialTaxRate, b.SpecialDistrictTaxCollectable):
		return JurisdictionUS
	case anyNonZero(b.CountryTaxableAmount, b.CountryTaxRate, b.CountryTaxCollectable):
		return JurisdictionInternational
	}
	return JurisdictionUnknown
}

func anyNonZero(values ...decimal.Decimal) bool {
	for _, v := range values {
		if !v.IsZero() {
			return true
		}
	}
	return false
}
