package taxjar

import (
	"context"
	"net/http"
)

// NexusRegion is a region where the account has nexus.
type NexusRegion struct {
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
	RegionCode  string `json:"region_code"`
	Region      string `json:"region"`
}

// NexusRegions lists the regions where the account has nexus.
func (c *Client) NexusRegions(ctx context.Context) ([]NexusRegion, error) {
	return call[[]NexusRegion](ctx, c, http.MethodGet, "nexus/regions", "regions", nil)
}
