package taxjar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/taxjar-go/internal/sandbox"
	"github.com/cyphera/taxjar-go/pkg/mocks"
	"github.com/cyphera/taxjar-go/pkg/taxjar"
)

func TestClient_ReportsMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := sandbox.New("foo123")
	fake.Stub(http.MethodGet, "/v2/transactions/orders/missing", http.StatusNotFound, []byte(`{"error":"Not Found"}`))
	srv := httptest.NewServer(fake.Handler())
	defer srv.Close()

	collector := mocks.NewMockMetricsCollectorForTest(t)
	gomock.InOrder(
		collector.EXPECT().RecordRequestDuration(http.MethodGet, "categories", http.StatusOK, gomock.Any()),
		collector.EXPECT().RecordRequestCount(http.MethodGet, "categories", http.StatusOK),
	)
	gomock.InOrder(
		collector.EXPECT().RecordRequestDuration(http.MethodGet, "transactions/orders/missing", http.StatusNotFound, gomock.Any()),
		collector.EXPECT().RecordRequestCount(http.MethodGet, "transactions/orders/missing", http.StatusNotFound),
		collector.EXPECT().RecordRequestError(http.MethodGet, "transactions/orders/missing"),
	)

	client, err := taxjar.NewClient("foo123",
		taxjar.WithBaseURL(srv.URL+"/v2/"),
		taxjar.WithMetricsCollector(collector),
	)
	require.NoError(t, err)

	_, err = client.Categories(context.Background())
	require.NoError(t, err)

	_, err = client.ShowOrder(context.Background(), "missing")
	require.True(t, taxjar.IsNotFound(err))
}

// Callers depend on taxjar.API and swap in the generated mock in their tests.
func TestAPIConsumerWithMock(t *testing.T) {
	api := mocks.NewMockAPIForTest(t)
	api.EXPECT().
		Validate(gomock.Any(), taxjar.ValidationParams{VAT: "FR40303265045"}).
		Return(&taxjar.Validation{Valid: true}, nil)

	valid, err := vatIsValid(context.Background(), api, "FR40303265045")
	require.NoError(t, err)
	require.True(t, valid)
}

func vatIsValid(ctx context.Context, api taxjar.API, vat string) (bool, error) {
	validation, err := api.Validate(ctx, taxjar.ValidationParams{VAT: vat})
	if err != nil {
		return false, err
	}
	return validation.Valid, nil
}
