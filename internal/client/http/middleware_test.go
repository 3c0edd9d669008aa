package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
)

func okTransport(seen *[]*http.Request) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		*seen = append(*seen, req)
		return &http.Response{StatusCode: http.StatusOK, Status: "200 OK", Body: http.NoBody, Request: req}, nil
	})
}

func TestCorrelationIDMiddleware(t *testing.T) {
	var seen []*http.Request
	transport := CorrelationIDMiddleware()(okTransport(&seen))

	t.Run("Stamps a fresh id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "https://api.taxjar.com/v2/categories", nil)
		require.NoError(t, err)

		_, err = transport.RoundTrip(req)
		require.NoError(t, err)

		sent := seen[len(seen)-1]
		_, err = uuid.Parse(sent.Header.Get(RequestIDHeader))
		assert.NoError(t, err)
		assert.Empty(t, req.Header.Get(RequestIDHeader), "caller's request must not be modified")
	})

	t.Run("Keeps an existing id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "https://api.taxjar.com/v2/categories", nil)
		require.NoError(t, err)
		req.Header.Set(RequestIDHeader, "req-123")

		_, err = transport.RoundTrip(req)
		require.NoError(t, err)

		assert.Equal(t, "req-123", seen[len(seen)-1].Header.Get(RequestIDHeader))
	})
}

func TestLoggingMiddleware_NeverLogsAuthorization(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	var seen []*http.Request
	transport := LoggingMiddleware(zap.New(core))(okTransport(&seen))

	req, err := http.NewRequest(http.MethodPost, "https://api.taxjar.com/v2/taxes", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer super-secret")

	_, err = transport.RoundTrip(req)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "HTTP request started", entries[0].Message)
	assert.Equal(t, "HTTP response received", entries[1].Message)
	for _, entry := range entries {
		for _, value := range entry.ContextMap() {
			if s, ok := value.(string); ok {
				assert.NotContains(t, s, "super-secret")
			}
		}
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	var seen []*http.Request
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	transport := RateLimitMiddleware(limiter)(okTransport(&seen))

	req, err := http.NewRequest(http.MethodGet, "https://api.taxjar.com/v2/categories", nil)
	require.NoError(t, err)
	_, err = transport.RoundTrip(req)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = transport.RoundTrip(req.WithContext(ctx))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
	assert.Len(t, seen, 1)
}
