package analytics

import "context"

// Repository runs the aggregate order queries over a manager's stores.
type Repository interface {
	PopularProducts(ctx context.Context, managerID, limit int) ([]*PopularProduct, error)
	PopularCustomers(ctx context.Context, managerID, limit int, ranking Ranking) ([]*PopularCustomer, error)
}
