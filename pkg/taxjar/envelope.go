package taxjar

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// decodeEnvelope unwraps the single top-level key every TaxJar response is
// wrapped in and decodes its value into target.
func decodeEnvelope(body []byte, key string, target interface{}) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &ContractError{Envelope: key, Body: body, Err: errors.Wrap(err, "response is not a JSON object")}
	}

	raw, ok := envelope[key]
	if !ok || len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return &ContractError{Envelope: key, Body: body, Err: ErrMissingEnvelope}
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return &ContractError{Envelope: key, Body: body, Err: errors.Wrapf(err, "cannot decode %q", key)}
	}
	return nil
}

// call sends one request and decodes the named envelope into a T. On error
// the zero T is returned, never a partially decoded value.
func call[T any](ctx context.Context, c *Client, method, path, envelope string, params interface{}) (T, error) {
	var zero T
	body, err := c.send(ctx, method, path, params)
	if err != nil {
		return zero, err
	}
	var result T
	if err := decodeEnvelope(body, envelope, &result); err != nil {
		return zero, err
	}
	return result, nil
}
