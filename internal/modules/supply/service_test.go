package supply

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storefront/internal/apperr"
	"github.com/georgemunganga/storefront/internal/modules/inventory"
)

type mockRepository struct {
	stock    map[string]int
	requests []*Request
}

func (m *mockRepository) CreateRequest(ctx context.Context, r *Request) (int, error) {
	units, ok := m.stock[r.ProductName]
	if !ok {
		return 0, inventory.ErrProductNotFound
	}
	units += r.UnitsRequested
	m.stock[r.ProductName] = units
	r.Number = len(m.requests) + 1
	m.requests = append(m.requests, r)
	return units, nil
}

type mockStores struct {
	inventory.Service
}

func (m *mockStores) EnsureManager(ctx context.Context, managerID, storeID int) (*inventory.Store, error) {
	if storeID != 1 {
		return nil, inventory.ErrStoreNotFound
	}
	if managerID != 2 {
		return nil, inventory.ErrNotStoreManager
	}
	return &inventory.Store{ID: 1, ManagerID: 2}, nil
}

func (m *mockStores) GetWarehouse(ctx context.Context, id int) (*inventory.Warehouse, error) {
	if id != 4 {
		return nil, inventory.ErrWarehouseNotFound
	}
	return &inventory.Warehouse{ID: 4}, nil
}

func setup(t *testing.T) (Service, *mockRepository) {
	logger, _ := test.NewNullLogger()
	repo := &mockRepository{stock: map[string]int{"Widget": 15}}
	return NewService(repo, &mockStores{}, logger), repo
}

func TestPlaceRequest(t *testing.T) {
	ctx := context.Background()
	valid := PlaceRequest{ManagerID: 2, StoreID: 1, ProductName: "Widget", Units: 10, WarehouseID: 4}

	t.Run("Success", func(t *testing.T) {
		svc, repo := setup(t)
		receipt, err := svc.PlaceRequest(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, 25, receipt.NewStock)
		assert.Equal(t, 1, receipt.Request.Number)
		assert.Equal(t, 4, repo.requests[0].WarehouseID)
	})

	t.Run("Fail when not the manager", func(t *testing.T) {
		svc, repo := setup(t)
		req := valid
		req.ManagerID = 3
		_, err := svc.PlaceRequest(ctx, req)
		assert.ErrorIs(t, err, inventory.ErrNotStoreManager)
		assert.Equal(t, 15, repo.stock["Widget"])
	})

	t.Run("Fail on unknown warehouse", func(t *testing.T) {
		svc, repo := setup(t)
		req := valid
		req.WarehouseID = 5
		_, err := svc.PlaceRequest(ctx, req)
		assert.ErrorIs(t, err, inventory.ErrWarehouseNotFound)
		assert.Empty(t, repo.requests)
	})

	t.Run("Fail on non-positive units", func(t *testing.T) {
		svc, _ := setup(t)
		req := valid
		req.Units = 0
		_, err := svc.PlaceRequest(ctx, req)
		assert.Equal(t, apperr.KindMalformedInput, apperr.KindOf(err))
	})

	t.Run("Fail on unknown product", func(t *testing.T) {
		svc, _ := setup(t)
		req := valid
		req.ProductName = "Gizmo"
		_, err := svc.PlaceRequest(ctx, req)
		assert.ErrorIs(t, err, inventory.ErrProductNotFound)
	})
}
