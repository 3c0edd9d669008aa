package taxjar

import (
	"context"
	"net/http"
	"net/url"
)

const customersPath = "customers"

// ListCustomers returns the ids of all exempt customers.
func (c *Client) ListCustomers(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, c, http.MethodGet, customersPath, "customers", nil)
}

// ShowCustomer fetches one customer by id.
func (c *Client) ShowCustomer(ctx context.Context, customerID string) (*Customer, error) {
	return call[*Customer](ctx, c, http.MethodGet, customerPath(customerID), "customer", nil)
}

// CreateCustomer registers an exempt customer.
func (c *Client) CreateCustomer(ctx context.Context, params CustomerParams) (*Customer, error) {
	return call[*Customer](ctx, c, http.MethodPost, customersPath, "customer", params)
}

// UpdateCustomer replaces the customer identified by params.CustomerID.
func (c *Client) UpdateCustomer(ctx context.Context, params CustomerParams) (*Customer, error) {
	return call[*Customer](ctx, c, http.MethodPut, customerPath(params.CustomerID), "customer", params)
}

// DeleteCustomer removes a customer and returns its last known state.
func (c *Client) DeleteCustomer(ctx context.Context, customerID string) (*Customer, error) {
	return call[*Customer](ctx, c, http.MethodDelete, customerPath(customerID), "customer", nil)
}

func customerPath(id string) string {
	return customersPath + "/" + url.PathEscape(id)
}
