package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

func newCaptureServer(t *testing.T, status int, response string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured = append(captured, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

type recordingMetrics struct {
	counts []int
	errors int
}

func (m *recordingMetrics) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
}

func (m *recordingMetrics) RecordRequestCount(method, path string, statusCode int) {
	m.counts = append(m.counts, statusCode)
}

func (m *recordingMetrics) RecordRequestError(method, path string) {
	m.errors++
}

func TestDoRequest_Success(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK, `{"ok":true}`)
	metrics := &recordingMetrics{}

	client := NewHTTPClient(
		WithBaseURL(srv.URL+"/v2/"),
		WithDefaultHeader("x-api-version", "2022-01-24"),
		WithMetricsCollector(metrics),
		WithLogger(zap.NewNop()),
	)

	resp, err := client.Post(context.Background(), "taxes", []byte(`{"shipping":1.5}`), WithBearerToken("secret"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, `{"ok":true}`, string(resp.Body))

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/v2/taxes", req.path)
	assert.Equal(t, "Bearer secret", req.header.Get("Authorization"))
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.header.Get("Accept"))
	assert.Equal(t, "2022-01-24", req.header.Get("x-api-version"))
	assert.Equal(t, `{"shipping":1.5}`, string(req.body))

	assert.Equal(t, []int{http.StatusOK}, metrics.counts)
	assert.Equal(t, 0, metrics.errors)
}

func TestDoRequest_ReadVerbsSendNoBody(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK, `{}`)
	client := NewHTTPClient(WithBaseURL(srv.URL))

	_, err := client.Get(context.Background(), "/rates/90002", WithQuery(url.Values{"city": {"Los Angeles"}}))
	require.NoError(t, err)
	_, err = client.Delete(context.Background(), "customers/1", WithQuery(url.Values{"force": {"true"}}))
	require.NoError(t, err)

	require.Len(t, *captured, 2)
	assert.Equal(t, "/rates/90002", (*captured)[0].path)
	assert.Equal(t, "city=Los+Angeles", (*captured)[0].query)
	assert.Empty(t, (*captured)[0].body)
	assert.Empty(t, (*captured)[0].header.Get("Content-Type"))
	assert.Equal(t, http.MethodDelete, (*captured)[1].method)
	assert.Equal(t, "force=true", (*captured)[1].query)
}

func TestDoRequest_NonSuccessReturnsHTTPError(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusUnprocessableEntity, `{"error":"Unprocessable Entity"}`)
	metrics := &recordingMetrics{}
	client := NewHTTPClient(WithBaseURL(srv.URL), WithMetricsCollector(metrics))

	resp, err := client.Put(context.Background(), "transactions/orders/1", []byte(`{}`))
	require.Error(t, err)
	require.NotNil(t, resp)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, "Unprocessable Entity", httpErr.Status)
	assert.Equal(t, http.MethodPut, httpErr.Method)
	assert.Equal(t, `{"error":"Unprocessable Entity"}`, string(httpErr.Body))
	assert.Contains(t, httpErr.Error(), "422")
	assert.Equal(t, 1, metrics.errors)
}

func TestDoRequest_TransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	metrics := &recordingMetrics{}
	client := NewHTTPClient(WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond), WithMetricsCollector(metrics))

	resp, err := client.Get(context.Background(), "slow")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http request failed")
	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
	assert.Equal(t, []int{0}, metrics.counts)
	assert.Equal(t, 1, metrics.errors)
}

func TestResolveURL(t *testing.T) {
	testCases := []struct {
		name     string
		baseURL  string
		path     string
		expected string
		wantErr  bool
	}{
		{"trailing slash base", "https://api.taxjar.com/v2/", "taxes", "https://api.taxjar.com/v2/taxes", false},
		{"bare base", "https://api.taxjar.com/v2", "/taxes", "https://api.taxjar.com/v2/taxes", false},
		{"no base absolute path", "", "https://api.taxjar.com/v2/categories", "https://api.taxjar.com/v2/categories", false},
		{"no base relative path", "", "categories", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewHTTPClient(WithBaseURL(tc.baseURL))
			got, err := client.resolveURL(tc.path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.baseURL, client.GetBaseURL())
		})
	}
}

func TestWithHTTPClient_CopiesClient(t *testing.T) {
	original := &http.Client{Timeout: time.Minute}

	client := NewHTTPClient(
		WithHTTPClient(original),
		WithTimeout(time.Second),
		WithMiddleware(CorrelationIDMiddleware()),
	)

	assert.Equal(t, time.Minute, original.Timeout)
	assert.Nil(t, original.Transport)
	assert.Equal(t, time.Second, client.httpClient.Timeout)
	assert.NotNil(t, client.httpClient.Transport)
}
