package catalog

import "context"

// Repository defines storage for product changes and their audit trail.
type Repository interface {
	// ApplyUpdate records u and applies c to the product named by u in one
	// transaction. It fills in u's number and time.
	ApplyUpdate(ctx context.Context, u *ProductUpdate, c Change) error
	ListRecentByManager(ctx context.Context, managerID, limit int) ([]*ProductUpdate, error)
}
