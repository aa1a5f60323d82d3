package supply

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront/internal/apperr"
	"github.com/georgemunganga/storefront/internal/modules/inventory"
)

// Service defines supply request business logic.
type Service interface {
	Authorize(ctx context.Context, managerID, storeID int) error
	PlaceRequest(ctx context.Context, req PlaceRequest) (*Receipt, error)
}

// PlaceRequest holds what a manager entered for a supply request.
type PlaceRequest struct {
	ManagerID   int
	StoreID     int
	ProductName string
	Units       int
	WarehouseID int
}

type service struct {
	repo   Repository
	stores inventory.Service
	log    log.FieldLogger
}

func NewService(repo Repository, stores inventory.Service, logger log.FieldLogger) Service {
	return &service{repo: repo, stores: stores, log: logger}
}

func (s *service) Authorize(ctx context.Context, managerID, storeID int) error {
	_, err := s.stores.EnsureManager(ctx, managerID, storeID)
	return err
}

// PlaceRequest checks store management and the warehouse before stock is touched.
func (s *service) PlaceRequest(ctx context.Context, req PlaceRequest) (*Receipt, error) {
	productName := strings.TrimSpace(req.ProductName)
	if productName == "" {
		return nil, apperr.MalformedInput("product name", errors.New("product name is empty"))
	}
	if req.Units <= 0 {
		return nil, apperr.MalformedInput("number of units", errors.New("number of units must be positive"))
	}
	if err := s.Authorize(ctx, req.ManagerID, req.StoreID); err != nil {
		return nil, err
	}
	if _, err := s.stores.GetWarehouse(ctx, req.WarehouseID); err != nil {
		return nil, err
	}

	r := &Request{
		ManagerID:      req.ManagerID,
		WarehouseID:    req.WarehouseID,
		StoreID:        req.StoreID,
		ProductName:    productName,
		UnitsRequested: req.Units,
	}
	stock, err := s.repo.CreateRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"request":   r.Number,
		"manager":   r.ManagerID,
		"warehouse": r.WarehouseID,
		"store":     r.StoreID,
		"product":   r.ProductName,
		"units":     r.UnitsRequested,
		"stock":     stock,
	}).Info("supply request filed")
	return &Receipt{Request: r, NewStock: stock}, nil
}
