package taxjar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrders(t *testing.T) {
	client, fake := newSandboxClient(t)

	ids, err := client.ListOrders(context.Background(), ListTransactionsParams{
		FromTransactionDate: "2015/05/01",
		ToTransactionDate:   "2015/05/31",
		Provider:            "api",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"123", "456"}, ids)

	req, _ := fake.LastRequest()
	assert.Equal(t, "/v2/transactions/orders", req.Path)
	query, err := url.ParseQuery(req.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"from_transaction_date": {"2015/05/01"},
		"to_transaction_date":   {"2015/05/31"},
		"provider":              {"api"},
	}, query)
}

func TestListRefunds_UsesRefundsPath(t *testing.T) {
	client, fake := newSandboxClient(t)

	ids, err := client.ListRefunds(context.Background(), ListTransactionsParams{TransactionDate: "2015/05/14"})
	require.NoError(t, err)
	assert.Equal(t, []string{"321", "654"}, ids)

	req, _ := fake.LastRequest()
	assert.Equal(t, "/v2/transactions/refunds", req.Path)
	assert.Equal(t, "transaction_date=2015%2F05%2F14", req.RawQuery)
}

func TestShowOrder(t *testing.T) {
	client, _ := newSandboxClient(t)

	order, err := client.ShowOrder(context.Background(), "123")
	require.NoError(t, err)

	assert.Equal(t, "123", order.TransactionID)
	assert.Equal(t, int64(10649), order.UserID)
	assert.Equal(t, "2015-05-14T00:00:00Z", order.TransactionDate)
	assert.Equal(t, "90002", order.ToZip)
	assertDecimal(t, "17.95", order.Amount)
	assertDecimal(t, "0.95", order.SalesTax)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, "Heavy Widget", order.LineItems[0].Description)
	assertDecimal(t, "1", order.LineItems[0].Quantity)
	assertDecimal(t, "15", order.LineItems[0].UnitPrice)
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	client, fake := newSandboxClient(t)

	params := OrderParams{
		TransactionID:   "20",
		TransactionDate: "2015/05/04",
		ToCountry:       "US",
		ToZip:           "90002",
		ToState:         "CA",
		Amount:          dec("17.95"),
		Shipping:        dec("2"),
		SalesTax:        dec("0.95"),
		LineItems: []LineItem{{
			Quantity:          decimal.NewFromInt(1),
			ProductIdentifier: "12-34243-9",
			Description:       "Fuzzy Widget",
			UnitPrice:         decimal.RequireFromString("15"),
			SalesTax:          decimal.RequireFromString("0.95"),
		}},
	}

	order, err := client.CreateOrder(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, params.TransactionID, order.TransactionID)
	assert.Equal(t, params.TransactionDate, order.TransactionDate)
	assert.Equal(t, params.ToState, order.ToState)
	assertDecimal(t, "17.95", order.Amount)
	assertDecimal(t, "2", order.Shipping)
	assertDecimal(t, "0.95", order.SalesTax)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, "Fuzzy Widget", order.LineItems[0].Description)
	assertDecimal(t, "15", order.LineItems[0].UnitPrice)

	req, _ := fake.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v2/transactions/orders", req.Path)
	assert.Empty(t, req.RawQuery)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestUpdateOrder_UsesTransactionIDInPath(t *testing.T) {
	client, fake := newSandboxClient(t)

	order, err := client.UpdateOrder(context.Background(), OrderParams{TransactionID: "123", Amount: dec("17")})
	require.NoError(t, err)
	assert.Equal(t, "123", order.TransactionID)
	assertDecimal(t, "17", order.Amount)

	req, _ := fake.LastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/v2/transactions/orders/123", req.Path)
}

func TestDeleteOrder_NullFieldsDecodeAsZero(t *testing.T) {
	client, fake := newSandboxClient(t)

	order, err := client.DeleteOrder(context.Background(), "123")
	require.NoError(t, err)

	assert.Equal(t, "123", order.TransactionID)
	assert.Empty(t, order.TransactionDate)
	assert.Empty(t, order.ToZip)
	assertDecimal(t, "0", order.Amount)
	assertDecimal(t, "0", order.SalesTax)
	assert.Empty(t, order.LineItems)

	req, _ := fake.LastRequest()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Empty(t, req.Body)
}

func TestRefunds(t *testing.T) {
	client, fake := newSandboxClient(t)
	ctx := context.Background()

	refund, err := client.ShowRefund(ctx, "321")
	require.NoError(t, err)
	assert.Equal(t, "321", refund.TransactionID)
	assert.Equal(t, "123", refund.TransactionReferenceID)
	assertDecimal(t, "-17.95", refund.Amount)

	created, err := client.CreateRefund(ctx, RefundParams{
		OrderParams:            OrderParams{TransactionID: "321-r", Amount: dec("-5"), Shipping: dec("0")},
		TransactionReferenceID: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "321-r", created.TransactionID)
	assert.Equal(t, "123", created.TransactionReferenceID)
	assertDecimal(t, "-5", created.Amount)

	updated, err := client.UpdateRefund(ctx, RefundParams{OrderParams: OrderParams{TransactionID: "321", Amount: dec("-3")}})
	require.NoError(t, err)
	assertDecimal(t, "-3", updated.Amount)
	req, _ := fake.LastRequest()
	assert.Equal(t, "/v2/transactions/refunds/321", req.Path)

	deleted, err := client.DeleteRefund(ctx, "321")
	require.NoError(t, err)
	assert.Equal(t, "321", deleted.TransactionID)
	assertDecimal(t, "0", deleted.Amount)
}

func TestCustomers(t *testing.T) {
	client, fake := newSandboxClient(t)
	ctx := context.Background()

	ids, err := client.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"123", "124", "125"}, ids)

	customer, err := client.ShowCustomer(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "wholesale", customer.ExemptionType)
	require.Len(t, customer.ExemptRegions, 2)
	assert.Equal(t, "FL", customer.ExemptRegions[0].State)

	created, err := client.CreateCustomer(ctx, CustomerParams{
		CustomerID:    "200",
		ExemptionType: "non_exempt",
		Name:          "Initech",
		ExemptRegions: []ExemptRegion{{Country: "US", State: "TX"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "200", created.CustomerID)
	assert.Equal(t, "Initech", created.Name)
	assert.Equal(t, []ExemptRegion{{Country: "US", State: "TX"}}, created.ExemptRegions)

	updated, err := client.UpdateCustomer(ctx, CustomerParams{CustomerID: "200", Name: "Initrode"})
	require.NoError(t, err)
	assert.Equal(t, "Initrode", updated.Name)
	req, _ := fake.LastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/v2/customers/200", req.Path)

	deleted, err := client.DeleteCustomer(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "123", deleted.CustomerID)
}

func TestIdentifiersArePathEscaped(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"order":{"transaction_id":"x"},"customer":{"customer_id":"x"},"rate":{"zip":"x"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(testAPIKey, WithBaseURL(srv.URL+"/v2"))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.ShowOrder(ctx, "a b/c")
	require.NoError(t, err)
	_, err = client.DeleteCustomer(ctx, "x?y")
	require.NoError(t, err)
	_, err = client.RatesForLocation(ctx, "V5K 0A1", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/v2/transactions/orders/a%20b%2Fc",
		"/v2/customers/x%3Fy",
		"/v2/rates/V5K%200A1",
	}, paths)
}
