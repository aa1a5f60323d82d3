package supply

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

func (r *postgresRepo) CreateRequest(ctx context.Context, req *Request) (int, error) {
	var stock int
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			UPDATE product SET numberofunits = numberofunits + $1
			WHERE storeid=$2 AND productname=$3
			RETURNING numberofunits`,
			req.UnitsRequested, req.StoreID, req.ProductName).Scan(&stock)
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.ErrProductNotFound
		}
		if err != nil {
			return database.Classify("increment stock", errors.Wrapf(err, "store %d product %q", req.StoreID, req.ProductName))
		}

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO productsupplyrequests (managerid, warehouseid, storeid, productname, unitsrequested)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING requestnumber`,
			req.ManagerID, req.WarehouseID, req.StoreID, req.ProductName, req.UnitsRequested).Scan(&req.Number)
		if err != nil {
			return database.Classify("insert supply request", err)
		}
		return nil
	})
	return stock, err
}
