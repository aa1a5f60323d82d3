package order

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront/internal/apperr"
	"github.com/georgemunganga/storefront/internal/modules/inventory"
)

// Service defines the order business logic.
type Service interface {
	// PlaceOrder checks the store is in range of the customer before anything is written.
	PlaceOrder(ctx context.Context, customerID, storeID int, productName string, quantity int) (*Receipt, error)

	// RecentOrders returns the customer's latest orders, newest first.
	RecentOrders(ctx context.Context, customerID int) ([]*Order, error)

	Limit() int
}

type service struct {
	repo   Repository
	stores inventory.Service
	limit  int
	log    log.FieldLogger
}

// NewService creates a new order service. Recent order views show at most limit rows.
func NewService(repo Repository, stores inventory.Service, limit int, logger log.FieldLogger) Service {
	return &service{repo: repo, stores: stores, limit: limit, log: logger}
}

func (s *service) Limit() int { return s.limit }

func (s *service) PlaceOrder(ctx context.Context, customerID, storeID int, productName string, quantity int) (*Receipt, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, apperr.MalformedInput("product name", errors.New("product name is empty"))
	}
	if quantity <= 0 {
		return nil, apperr.MalformedInput("quantity", errors.New("quantity must be positive"))
	}

	if _, err := s.stores.EnsureWithinRange(ctx, customerID, storeID); err != nil {
		return nil, err
	}

	o := &Order{
		CustomerID:   customerID,
		StoreID:      storeID,
		ProductName:  productName,
		UnitsOrdered: quantity,
	}
	remaining, err := s.repo.CreateOrder(ctx, o)
	if err != nil {
		return nil, err
	}

	entry := s.log.WithFields(log.Fields{
		"order":     o.Number,
		"customer":  customerID,
		"store":     storeID,
		"product":   productName,
		"units":     quantity,
		"remaining": remaining,
	})
	if remaining < 0 {
		entry.Warn("stock went negative")
	}
	entry.Info("order placed")
	return &Receipt{Order: o, RemainingUnits: remaining}, nil
}

func (s *service) RecentOrders(ctx context.Context, customerID int) ([]*Order, error) {
	return s.repo.ListRecentByCustomer(ctx, customerID, s.limit)
}
