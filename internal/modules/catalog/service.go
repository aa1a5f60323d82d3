package catalog

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront/internal/apperr"
	"github.com/georgemunganga/storefront/internal/modules/inventory"
)

// Service defines catalog business logic.
type Service interface {
	Authorize(ctx context.Context, managerID, storeID int) error
	UpdateProduct(ctx context.Context, managerID, storeID int, productName string, c Change) (*ProductUpdate, error)
	RecentUpdates(ctx context.Context, managerID int) ([]*ProductUpdate, error)
	Limit() int
}

type service struct {
	repo   Repository
	stores inventory.Service
	limit  int
	log    log.FieldLogger
}

func NewService(repo Repository, stores inventory.Service, limit int, logger log.FieldLogger) Service {
	return &service{repo: repo, stores: stores, limit: limit, log: logger}
}

func (s *service) Limit() int { return s.limit }

// Authorize fails unless managerID manages the store.
func (s *service) Authorize(ctx context.Context, managerID, storeID int) error {
	_, err := s.stores.EnsureManager(ctx, managerID, storeID)
	return err
}

func (s *service) UpdateProduct(ctx context.Context, managerID, storeID int, productName string, c Change) (*ProductUpdate, error) {
	if err := s.Authorize(ctx, managerID, storeID); err != nil {
		return nil, err
	}
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, apperr.MalformedInput("product name", errors.New("product name is empty"))
	}

	u := &ProductUpdate{ManagerID: managerID, StoreID: storeID, ProductName: productName}
	if err := s.repo.ApplyUpdate(ctx, u, c); err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"update":  u.Number,
		"manager": managerID,
		"store":   storeID,
		"product": productName,
		"field":   c.Field.String(),
		"value":   c.String(),
	}).Info("product updated")
	return u, nil
}

func (s *service) RecentUpdates(ctx context.Context, managerID int) ([]*ProductUpdate, error) {
	return s.repo.ListRecentByManager(ctx, managerID, s.limit)
}
