package taxjar

import (
	"context"
	"net/http"
	"net/url"
)

const (
	ordersPath  = "transactions/orders"
	refundsPath = "transactions/refunds"
)

// ListOrders returns the ids of the order transactions matching params.
func (c *Client) ListOrders(ctx context.Context, params ListTransactionsParams) ([]string, error) {
	return call[[]string](ctx, c, http.MethodGet, ordersPath, "orders", params)
}

// ShowOrder fetches one order by transaction id.
func (c *Client) ShowOrder(ctx context.Context, transactionID string) (*Order, error) {
	return call[*Order](ctx, c, http.MethodGet, transactionPath(ordersPath, transactionID), "order", nil)
}

// CreateOrder records a new order transaction.
func (c *Client) CreateOrder(ctx context.Context, params OrderParams) (*Order, error) {
	return call[*Order](ctx, c, http.MethodPost, ordersPath, "order", params)
}

// UpdateOrder replaces the order identified by params.TransactionID.
func (c *Client) UpdateOrder(ctx context.Context, params OrderParams) (*Order, error) {
	return call[*Order](ctx, c, http.MethodPut, transactionPath(ordersPath, params.TransactionID), "order", params)
}

// DeleteOrder removes an order. The returned order carries only its id; the
// service nulls every other field.
func (c *Client) DeleteOrder(ctx context.Context, transactionID string) (*Order, error) {
	return call[*Order](ctx, c, http.MethodDelete, transactionPath(ordersPath, transactionID), "order", nil)
}

// ListRefunds returns the ids of the refund transactions matching params.
func (c *Client) ListRefunds(ctx context.Context, params ListTransactionsParams) ([]string, error) {
	return call[[]string](ctx, c, http.MethodGet, refundsPath, "refunds", params)
}

// ShowRefund fetches one refund by transaction id.
func (c *Client) ShowRefund(ctx context.Context, transactionID string) (*Refund, error) {
	return call[*Refund](ctx, c, http.MethodGet, transactionPath(refundsPath, transactionID), "refund", nil)
}

// CreateRefund records a new refund transaction.
func (c *Client) CreateRefund(ctx context.Context, params RefundParams) (*Refund, error) {
	return call[*Refund](ctx, c, http.MethodPost, refundsPath, "refund", params)
}

// UpdateRefund replaces the refund identified by params.TransactionID.
func (c *Client) UpdateRefund(ctx context.Context, params RefundParams) (*Refund, error) {
	return call[*Refund](ctx, c, http.MethodPut, transactionPath(refundsPath, params.TransactionID), "refund", params)
}

// DeleteRefund removes a refund. As with DeleteOrder, only the id survives.
func (c *Client) DeleteRefund(ctx context.Context, transactionID string) (*Refund, error) {
	return call[*Refund](ctx, c, http.MethodDelete, transactionPath(refundsPath, transactionID), "refund", nil)
}

func transactionPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}
