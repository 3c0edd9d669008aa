package taxjar

// Refund is a refund transaction. TransactionReferenceID points at the order
// being refunded.
type Refund struct {
	Order
	TransactionReferenceID string `json:"transaction_reference_id"`
}
