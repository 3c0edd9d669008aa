package taxjar

import (
	"context"
	"net/http"
)

// SummaryRates returns the minimum and average rates of every region TaxJar
// supports.
func (c *Client) SummaryRates(ctx context.Context) ([]SummaryRate, error) {
	return call[[]SummaryRate](ctx, c, http.MethodGet, "summary_rates", "summary_rates", nil)
}
