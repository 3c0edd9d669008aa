package taxjar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// QueryEncoder is implemented by parameter types sent on GET and DELETE
// requests. Values returns the exact query string mapping.
type QueryEncoder interface {
	Values() url.Values
}

// queryValues flattens params into a query string mapping. Types with their own
// Values method are used as-is; anything else goes through its JSON form, so the
// same field names appear on the wire regardless of verb.
func queryValues(params interface{}) (url.Values, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil
	case QueryEncoder:
		return p.Values(), nil
	case url.Values:
		return p, nil
	case map[string]string:
		values := url.Values{}
		for k, v := range p {
			values.Set(k, v)
		}
		return values, nil
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode query parameters")
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var fields map[string]interface{}
	if err := decoder.Decode(&fields); err != nil {
		return nil, errors.Wrap(err, "query parameters must encode to a JSON object")
	}

	values := url.Values{}
	for key, value := range fields {
		switch v := value.(type) {
		case nil:
		case []interface{}:
			for _, item := range v {
				s, err := queryScalar(item)
				if err != nil {
					return nil, err
				}
				values.Add(key+"[]", s)
			}
		default:
			s, err := queryScalar(v)
			if err != nil {
				return nil, err
			}
			values.Set(key, s)
		}
	}
	return values, nil
}

func queryScalar(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprintf("%t", v), nil
	case nil:
		return "", nil
	default:
		nested, err := json.Marshal(v)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode nested query parameter")
		}
		return string(nested), nil
	}
}
