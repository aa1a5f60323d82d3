package analytics

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Service defines the manager reports.
type Service interface {
	// PopularProducts returns the most ordered products, most popular first.
	PopularProducts(ctx context.Context, managerID int) ([]*PopularProduct, error)
	// PopularCustomers returns customers ordered by the configured ranking.
	PopularCustomers(ctx context.Context, managerID int) ([]*PopularCustomer, error)
	Limit() int
}

type service struct {
	repo    Repository
	limit   int
	ranking Ranking
	log     log.FieldLogger
}

func NewService(repo Repository, limit int, ranking Ranking, logger log.FieldLogger) Service {
	return &service{repo: repo, limit: limit, ranking: ranking, log: logger}
}

func (s *service) Limit() int { return s.limit }

func (s *service) PopularProducts(ctx context.Context, managerID int) ([]*PopularProduct, error) {
	return s.repo.PopularProducts(ctx, managerID, s.limit)
}

func (s *service) PopularCustomers(ctx context.Context, managerID int) ([]*PopularCustomer, error) {
	if s.ranking == Ascending {
		s.log.WithField("ranking", s.ranking).Debug("popular customers listed with the fewest orders first")
	}
	return s.repo.PopularCustomers(ctx, managerID, s.limit, s.ranking)
}
