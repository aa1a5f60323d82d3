package inventory

import (
	"context"
	"fmt"

	"github.com/georgemunganga/storefront/internal/apperr"
	"github.com/georgemunganga/storefront/internal/geo"
	"github.com/georgemunganga/storefront/internal/modules/user"
)

// Service defines inventory business logic for stores, warehouses and products.
type Service interface {
	// Store operations
	NearbyStores(ctx context.Context, userID int) ([]NearbyStore, error)
	EnsureWithinRange(ctx context.Context, userID, storeID int) (*Store, error)
	EnsureManager(ctx context.Context, managerID, storeID int) (*Store, error)
	Radius() float64

	// Warehouse operations
	GetWarehouse(ctx context.Context, id int) (*Warehouse, error)

	// Product listing operations
	ListProducts(ctx context.Context, storeID int) ([]*Product, error)
}

type service struct {
	userRepo      user.Repository
	storeRepo     StoreRepository
	warehouseRepo WarehouseRepository
	productRepo   ProductRepository
	radius        float64
}

// NewService creates a new inventory service. Stores farther than radius
// from a user are out of range for that user.
func NewService(userRepo user.Repository, storeRepo StoreRepository, warehouseRepo WarehouseRepository,
	productRepo ProductRepository, radius float64) Service {
	return &service{
		userRepo:      userRepo,
		storeRepo:     storeRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		radius:        radius,
	}
}

func (s *service) Radius() float64 { return s.radius }

// NearbyStores lists every store within the radius of the user, in store id order.
func (s *service) NearbyStores(ctx context.Context, userID int) ([]NearbyStore, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		return nil, err
	}

	var nearby []NearbyStore
	for _, st := range stores {
		d := geo.Distance(u.Location(), st.Location())
		if d <= s.radius {
			nearby = append(nearby, NearbyStore{Store: *st, Distance: d})
		}
	}
	return nearby, nil
}

// EnsureWithinRange returns the store when it lies inside the user's radius.
func (s *service) EnsureWithinRange(ctx context.Context, userID, storeID int) (*Store, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	st, err := s.storeRepo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !geo.Within(u.Location(), st.Location(), s.radius) {
		return nil, &apperr.Error{
			Kind: apperr.KindValidation,
			Msg:  fmt.Sprintf("Store not within %g mile radius", s.radius),
			Err:  ErrStoreOutOfRange,
		}
	}
	return st, nil
}

// EnsureManager returns the store when managerID manages it.
func (s *service) EnsureManager(ctx context.Context, managerID, storeID int) (*Store, error) {
	st, err := s.storeRepo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if st.ManagerID != managerID {
		return nil, ErrNotStoreManager
	}
	return st, nil
}

func (s *service) GetWarehouse(ctx context.Context, id int) (*Warehouse, error) {
	return s.warehouseRepo.GetWarehouseByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, storeID int) ([]*Product, error) {
	return s.productRepo.ListProducts(ctx, storeID)
}
