package supply

import "context"

// Repository defines data access for supply requests.
type Repository interface {
	// CreateRequest adds the requested units to the store's stock and records
	// the request in one transaction, returning the new stock level.
	CreateRequest(ctx context.Context, r *Request) (stock int, err error)
}
