package taxjar

import "context"

//go:generate mockgen -source=interface.go -destination=../mocks/mock_taxjar_api.go -package=mocks

// API is the set of TaxJar operations offered by Client.
type API interface {
	Categories(ctx context.Context) ([]Category, error)
	RatesForLocation(ctx context.Context, zip string, params *RateParams) (*Rate, error)
	TaxForOrder(ctx context.Context, params TaxParams) (*Tax, error)

	ListOrders(ctx context.Context, params ListTransactionsParams) ([]string, error)
	ShowOrder(ctx context.Context, transactionID string) (*Order, error)
	CreateOrder(ctx context.Context, params OrderParams) (*Order, error)
	UpdateOrder(ctx context.Context, params OrderParams) (*Order, error)
	DeleteOrder(ctx context.Context, transactionID string) (*Order, error)

	ListRefunds(ctx context.Context, params ListTransactionsParams) ([]string, error)
	ShowRefund(ctx context.Context, transactionID string) (*Refund, error)
	CreateRefund(ctx context.Context, params RefundParams) (*Refund, error)
	UpdateRefund(ctx context.Context, params RefundParams) (*Refund, error)
	DeleteRefund(ctx context.Context, transactionID string) (*Refund, error)

	ListCustomers(ctx context.Context) ([]string, error)
	ShowCustomer(ctx context.Context, customerID string) (*Customer, error)
	CreateCustomer(ctx context.Context, params CustomerParams) (*Customer, error)
	UpdateCustomer(ctx context.Context, params CustomerParams) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) (*Customer, error)

	NexusRegions(ctx context.Context) ([]NexusRegion, error)
	Validate(ctx context.Context, params ValidationParams) (*Validation, error)
	ValidateAddress(ctx context.Context, params AddressParams) ([]Address, error)
	SummaryRates(ctx context.Context) ([]SummaryRate, error)
}
