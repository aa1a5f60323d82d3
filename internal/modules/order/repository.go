package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder takes the ordered units out of stock and records the order
	// in one transaction. It fills in the order number and time and returns
	// the units left afterwards.
	CreateOrder(ctx context.Context, o *Order) (remaining int, err error)

	// ListRecentByCustomer returns at most limit orders, newest first.
	ListRecentByCustomer(ctx context.Context, customerID, limit int) ([]*Order, error)
}
