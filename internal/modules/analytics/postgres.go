package analytics

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/georgemunganga/storefront/internal/database"
)

const popularProductsQuery = `
	SELECT o.productname, COUNT(*) AS numorders
	FROM orders o
	JOIN store s ON s.storeid = o.storeid
	WHERE s.managerid = $1
	GROUP BY o.productname
	ORDER BY numorders DESC, o.productname
	LIMIT $2`

const customersSelect = `
	SELECT u.userid, u.name, u.latitude, u.longitude, COUNT(DISTINCT o.ordernumber) AS numorders
	FROM store s
	JOIN orders o ON o.storeid = s.storeid
	JOIN users u ON u.userid = o.customerid
	WHERE s.managerid = $1
	GROUP BY u.userid, u.name, u.latitude, u.longitude`

var popularCustomersQueries = map[Ranking]string{
	Ascending:  customersSelect + ` ORDER BY numorders ASC, u.userid LIMIT $2`,
	Descending: customersSelect + ` ORDER BY numorders DESC, u.userid LIMIT $2`,
}

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) PopularProducts(ctx context.Context, managerID, limit int) ([]*PopularProduct, error) {
	var products []*PopularProduct
	if err := r.db.SelectContext(ctx, &products, popularProductsQuery, managerID, limit); err != nil {
		return nil, database.Classify("select popular products", errors.Wrapf(err, "manager %d", managerID))
	}
	return products, nil
}

func (r *postgresRepo) PopularCustomers(ctx context.Context, managerID, limit int, ranking Ranking) ([]*PopularCustomer, error) {
	query, ok := popularCustomersQueries[ranking]
	if !ok {
		return nil, errors.Errorf("unknown ranking %q", ranking)
	}
	var customers []*PopularCustomer
	if err := r.db.SelectContext(ctx, &customers, query, managerID, limit); err != nil {
		return nil, database.Classify("select popular customers", errors.Wrapf(err, "manager %d", managerID))
	}
	return customers, nil
}
