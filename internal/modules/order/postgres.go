package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/georgemunganga/storefront/internal/database"
	"github.com/georgemunganga/storefront/internal/modules/inventory"
)

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) (int, error) {
	var remaining int
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			UPDATE product SET numberofunits = numberofunits - $1
			WHERE storeid=$2 AND productname=$3
			RETURNING numberofunits`,
			o.UnitsOrdered, o.StoreID, o.ProductName).Scan(&remaining)
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.ErrProductNotFound
		}
		if err != nil {
			return database.Classify("decrement stock", errors.Wrapf(err, "store %d product %q", o.StoreID, o.ProductName))
		}

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO orders (customerid, storeid, productname, unitsordered, ordertime)
			VALUES ($1,$2,$3,$4,LOCALTIMESTAMP(0))
			RETURNING ordernumber, ordertime`,
			o.CustomerID, o.StoreID, o.ProductName, o.UnitsOrdered).Scan(&o.Number, &o.OrderTime)
		if err != nil {
			return database.Classify("insert order", err)
		}
		return nil
	})
	return remaining, err
}

func (r *postgresRepo) ListRecentByCustomer(ctx context.Context, customerID, limit int) ([]*Order, error) {
	var orders []*Order
	err := r.db.SelectContext(ctx, &orders, `
		SELECT ordernumber, customerid, storeid, productname, unitsordered, ordertime
		FROM orders WHERE customerid=$1
		ORDER BY ordertime DESC, ordernumber DESC
		LIMIT $2`, customerID, limit)
	if err != nil {
		return nil, database.Classify("select recent orders", errors.Wrapf(err, "customer %d", customerID))
	}
	return orders, nil
}
