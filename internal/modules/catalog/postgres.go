package catalog

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/georgemunganga/storefront/internal/database"
	"github.com/georgemunganga/storefront/internal/modules/inventory"
)

var updateStatements = map[Field]string{
	FieldProductName:   `UPDATE product SET productname=$1 WHERE storeid=$2 AND productname=$3`,
	FieldNumberOfUnits: `UPDATE product SET numberofunits=$1 WHERE storeid=$2 AND productname=$3`,
	FieldPricePerUnit:  `UPDATE product SET priceperunit=$1 WHERE storeid=$2 AND productname=$3`,
}

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ApplyUpdate(ctx context.Context, u *ProductUpdate, c Change) error {
	stmt, ok := updateStatements[c.Field]
	if !ok {
		return ErrUnknownField
	}

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO productupdates (managerid, storeid, productname, updatedon)
			VALUES ($1,$2,$3,LOCALTIMESTAMP(0))
			RETURNING updatenumber, updatedon`,
			u.ManagerID, u.StoreID, u.ProductName).Scan(&u.Number, &u.UpdatedOn)
		if err != nil {
			return database.Classify("insert product update", err)
		}

		res, err := tx.ExecContext(ctx, stmt, c.Value(), u.StoreID, u.ProductName)
		if err != nil {
			return database.Classify("update product", errors.Wrapf(err, "set %s", c.Field))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return database.Classify("update product", err)
		}
		if n == 0 {
			return inventory.ErrProductNotFound
		}
		return nil
	})
}

func (r *postgresRepo) ListRecentByManager(ctx context.Context, managerID, limit int) ([]*ProductUpdate, error) {
	var updates []*ProductUpdate
	err := r.db.SelectContext(ctx, &updates, `
		SELECT updatenumber, managerid, storeid, productname, updatedon
		FROM productupdates WHERE managerid=$1
		ORDER BY updatedon DESC, updatenumber DESC
		LIMIT $2`, managerID, limit)
	if err != nil {
		return nil, database.Classify("select product updates", errors.Wrapf(err, "manager %d", managerID))
	}
	return updates, nil
}
