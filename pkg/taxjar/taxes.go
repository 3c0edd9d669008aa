package taxjar

import (
	"context"
	"net/http"
)

// TaxForOrder calculates the sales tax for an order.
func (c *Client) TaxForOrder(ctx context.Context, params TaxParams) (*Tax, error) {
	return call[*Tax](ctx, c, http.MethodPost, "taxes", "tax", params)
}
