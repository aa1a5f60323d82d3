package inventory

import "context"

// StoreRepository defines store data storage.
type StoreRepository interface {
	GetStoreByID(ctx context.Context, id int) (*Store, error)
	ListStores(ctx context.Context) ([]*Store, error)
}

// WarehouseRepository defines warehouse data storage.
type WarehouseRepository interface {
	GetWarehouseByID(ctx context.Context, id int) (*Warehouse, error)
}

// ProductRepository defines store product data storage.
type ProductRepository interface {
	ListProducts(ctx context.Context, storeID int) ([]*Product, error)
}
