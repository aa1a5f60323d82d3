package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/georgemunganga/storefront/internal/apperr"
	"github.com/georgemunganga/storefront/internal/geo"
)

var (
	ErrStoreOutOfRange   = apperr.Validation("Store not within search radius")
	ErrNotStoreManager   = apperr.Validation("You don't manage this store.")
	ErrStoreNotFound     = apperr.Validation("Store does not exist")
	ErrWarehouseNotFound = apperr.Validation("Warehouse does not exist")
	ErrProductNotFound   = apperr.Validation("Product does not exist in this store")
)

// Store is a physical store managed by one user.
type Store struct {
	ID        int     `db:"storeid"`
	Name      string  `db:"name"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
	ManagerID int     `db:"managerid"`
}

func (s *Store) Location() geo.Point {
	return geo.Point{Latitude: s.Latitude, Longitude: s.Longitude}
}

// NearbyStore is a store together with its distance from the user.
type NearbyStore struct {
	Store
	Distance float64
}

// Warehouse supplies stores with product units.
type Warehouse struct {
	ID        int     `db:"warehouseid"`
	Area      float64 `db:"area"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

// Product is keyed by store and name.
type Product struct {
	StoreID       int             `db:"storeid"`
	Name          string          `db:"productname"`
	NumberOfUnits int             `db:"numberofunits"`
	PricePerUnit  decimal.Decimal `db:"priceperunit"`
}
