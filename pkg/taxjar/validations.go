package taxjar

import (
	"context"
	"net/http"
)

// Validate checks a VAT identification number.
func (c *Client) Validate(ctx context.Context, params ValidationParams) (*Validation, error) {
	return call[*Validation](ctx, c, http.MethodGet, "validation", "validation", params)
}

// ValidateAddress returns the normalised candidates for a US address.
func (c *Client) ValidateAddress(ctx context.Context, params AddressParams) ([]Address, error) {
	return call[[]Address](ctx, c, http.MethodPost, "addresses/validate", "addresses", params)
}
