package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/taxjar-go/pkg/taxjar"
)

var _ taxjar.API = (*MockAPI)(nil)

func TestMockAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockAPI(ctrl)

	params := taxjar.TaxParams{
		FromCountry: "US",
		FromZip:     "07001",
		ToCountry:   "US",
		ToZip:       "07446",
		Shipping:    decimal.RequireFromString("1.5"),
	}
	expected := &taxjar.Tax{
		AmountToCollect: decimal.RequireFromString("1.16"),
		HasNexus:        true,
	}

	mockClient.EXPECT().
		TaxForOrder(gomock.Any(), params).
		Return(expected, nil).
		Times(1)

	tax, err := mockClient.TaxForOrder(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, tax.AmountToCollect.Equal(decimal.RequireFromString("1.16")))
	assert.True(t, tax.HasNexus)
}

func TestMockAPIWithHelper(t *testing.T) {
	mockClient := NewMockAPIForTest(t)

	notFound := &taxjar.RemoteError{StatusCode: 404, Status: "Not Found", Body: []byte(`{"error":"Not Found"}`)}

	mockClient.EXPECT().
		ShowOrder(gomock.Any(), "missing").
		Return(nil, notFound).
		Times(1)

	mockClient.EXPECT().
		ListRefunds(gomock.Any(), taxjar.ListTransactionsParams{TransactionDate: "2015/05/14"}).
		Return([]string{"321", "654"}, nil).
		Times(1)

	ctx := context.Background()

	order, err := mockClient.ShowOrder(ctx, "missing")
	assert.Nil(t, order)
	assert.True(t, taxjar.IsNotFound(err))

	refunds, err := mockClient.ListRefunds(ctx, taxjar.ListTransactionsParams{TransactionDate: "2015/05/14"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"321", "654"}, refunds)
}

func TestMockAPIPropagatesTransportErrors(t *testing.T) {
	mockClient := NewMockAPIForTest(t)

	mockClient.EXPECT().
		Categories(gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	categories, err := mockClient.Categories(context.Background())
	assert.Empty(t, categories)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 0, taxjar.StatusCode(err))
}

func TestMockMetricsCollectorWithHelper(t *testing.T) {
	collector := NewMockMetricsCollectorForTest(t)

	collector.EXPECT().RecordRequestCount("GET", "categories", 200).Times(1)
	collector.EXPECT().RecordRequestError(gomock.Any(), gomock.Any()).Times(0)

	var metrics taxjar.MetricsCollector = collector
	metrics.RecordRequestCount("GET", "categories", 200)
}
