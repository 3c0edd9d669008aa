package taxjar

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// TaxJar expects amounts as JSON numbers. decimal.Decimal encodes as a quoted
// string unless the library-wide MarshalJSONWithoutQuotes flag is set, so the
// request types below write their decimal fields as json.Number themselves.

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func numberPtr(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := number(*d)
	return &n
}

func (p TaxParams) MarshalJSON() ([]byte, error) {
	type alias TaxParams
	return json.Marshal(struct {
		alias
		Amount   *json.Number `json:"amount,omitempty"`
		Shipping json.Number  `json:"shipping"`
	}{
		alias:    alias(p),
		Amount:   numberPtr(p.Amount),
		Shipping: number(p.Shipping),
	})
}

func (i TaxLineItem) MarshalJSON() ([]byte, error) {
	type alias TaxLineItem
	return json.Marshal(struct {
		alias
		UnitPrice *json.Number `json:"unit_price,omitempty"`
		Discount  *json.Number `json:"discount,omitempty"`
	}{
		alias:     alias(i),
		UnitPrice: numberPtr(i.UnitPrice),
		Discount:  numberPtr(i.Discount),
	})
}

func (p OrderParams) MarshalJSON() ([]byte, error) {
	type alias OrderParams
	return json.Marshal(struct {
		alias
		Amount   *json.Number `json:"amount,omitempty"`
		Shipping *json.Number `json:"shipping,omitempty"`
		SalesTax *json.Number `json:"sales_tax,omitempty"`
	}{
		alias:    alias(p),
		Amount:   numberPtr(p.Amount),
		Shipping: numberPtr(p.Shipping),
		SalesTax: numberPtr(p.SalesTax),
	})
}

// RefundParams needs its own encoder; the one promoted from OrderParams would
// drop transaction_reference_id.
func (p RefundParams) MarshalJSON() ([]byte, error) {
	order, err := json.Marshal(p.OrderParams)
	if err != nil {
		return nil, err
	}
	if p.TransactionReferenceID == "" {
		return order, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(order, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to extend refund params")
	}
	ref, err := json.Marshal(p.TransactionReferenceID)
	if err != nil {
		return nil, err
	}
	fields["transaction_reference_id"] = ref
	return json.Marshal(fields)
}

func (i LineItem) MarshalJSON() ([]byte, error) {
	type alias LineItem
	return json.Marshal(struct {
		alias
		Quantity  json.Number `json:"quantity"`
		UnitPrice json.Number `json:"unit_price"`
		Discount  json.Number `json:"discount"`
		SalesTax  json.Number `json:"sales_tax"`
	}{
		alias:     alias(i),
		Quantity:  number(i.Quantity),
		UnitPrice: number(i.UnitPrice),
		Discount:  number(i.Discount),
		SalesTax:  number(i.SalesTax),
	})
}
