package taxjar

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	httpClient "github.com/cyphera/taxjar-go/internal/client/http"
)

// send issues one authenticated request and returns the raw 2xx body. Read
// verbs carry params in the query string, write verbs as a JSON body.
func (c *Client) send(ctx context.Context, method, path string, params interface{}) ([]byte, error) {
	opts := []httpClient.RequestOption{httpClient.WithBearerToken(c.apiKey)}

	var resp *httpClient.Response
	var err error
	switch method {
	case http.MethodGet, http.MethodDelete:
		values, qerr := queryValues(params)
		if qerr != nil {
			return nil, qerr
		}
		opts = append(opts, httpClient.WithQuery(values))
		if method == http.MethodGet {
			resp, err = c.httpClient.Get(ctx, path, opts...)
		} else {
			resp, err = c.httpClient.Delete(ctx, path, opts...)
		}
	case http.MethodPost, http.MethodPut:
		var body []byte
		if params != nil {
			encoded, merr := json.Marshal(params)
			if merr != nil {
				return nil, errors.Wrapf(merr, "failed to encode %s %s body", method, path)
			}
			body = encoded
		}
		if method == http.MethodPost {
			resp, err = c.httpClient.Post(ctx, path, body, opts...)
		} else {
			resp, err = c.httpClient.Put(ctx, path, body, opts...)
		}
	default:
		return nil, errors.Errorf("unsupported method %s", method)
	}

	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) {
			c.logger.Debug("TaxJar returned an error",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", httpErr.StatusCode))
			return nil, &RemoteError{
				StatusCode: httpErr.StatusCode,
				Status:     httpErr.Status,
				Body:       httpErr.Body,
				Method:     method,
				Path:       path,
			}
		}
		return nil, errors.Wrapf(err, "taxjar: %s %s", method, path)
	}

	return resp.Body, nil
}
