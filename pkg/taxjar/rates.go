package taxjar

import (
	"context"
	"net/http"
	"net/url"
)

// RatesForLocation returns the rates for a zip or postal code. params may be
// nil.
func (c *Client) RatesForLocation(ctx context.Context, zip string, params *RateParams) (*Rate, error) {
	var query interface{}
	if params != nil {
		query = *params
	}
	return call[*Rate](ctx, c, http.MethodGet, "rates/"+url.PathEscape(zip), "rate", query)
}
