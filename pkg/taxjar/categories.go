package taxjar

import (
	"context"
	"net/http"
)

// Categories lists the product tax categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	return call[[]Category](ctx, c, http.MethodGet, "categories", "categories", nil)
}
