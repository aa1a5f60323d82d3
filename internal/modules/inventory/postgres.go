package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/georgemunganga/storefront/internal/database"
)

// ── Store repository ──────────────────────────────────────────────────────────

type storePostgresRepo struct{ db *sqlx.DB }

func NewStorePostgresRepository(db *sqlx.DB) StoreRepository {
	return &storePostgresRepo{db: db}
}

func (r *storePostgresRepo) GetStoreByID(ctx context.Context, id int) (*Store, error) {
	s := &Store{}
	err := r.db.GetContext(ctx, s, `
		SELECT storeid, name, latitude, longitude, managerid
		FROM store WHERE storeid=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, database.Classify("select store", errors.Wrapf(err, "store %d", id))
	}
	return s, nil
}

func (r *storePostgresRepo) ListStores(ctx context.Context) ([]*Store, error) {
	var stores []*Store
	err := r.db.SelectContext(ctx, &stores, `
		SELECT storeid, name, latitude, longitude, managerid
		FROM store ORDER BY storeid`)
	if err != nil {
		return nil, database.Classify("select stores", err)
	}
	return stores, nil
}

// ── Warehouse repository ──────────────────────────────────────────────────────

type warehousePostgresRepo struct{ db *sqlx.DB }

func NewWarehousePostgresRepository(db *sqlx.DB) WarehouseRepository {
	return &warehousePostgresRepo{db: db}
}

func (r *warehousePostgresRepo) GetWarehouseByID(ctx context.Context, id int) (*Warehouse, error) {
	w := &Warehouse{}
	err := r.db.GetContext(ctx, w, `
		SELECT warehouseid, area, latitude, longitude
		FROM warehouse WHERE warehouseid=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWarehouseNotFound
	}
	if err != nil {
		return nil, database.Classify("select warehouse", errors.Wrapf(err, "warehouse %d", id))
	}
	return w, nil
}

// ── Product repository ────────────────────────────────────────────────────────

type productPostgresRepo struct{ db *sqlx.DB }

func NewProductPostgresRepository(db *sqlx.DB) ProductRepository {
	return &productPostgresRepo{db: db}
}

func (r *productPostgresRepo) ListProducts(ctx context.Context, storeID int) ([]*Product, error) {
	var products []*Product
	err := r.db.SelectContext(ctx, &products, `
		SELECT storeid, productname, numberofunits, priceperunit
		FROM product WHERE storeid=$1 ORDER BY productname`, storeID)
	if err != nil {
		return nil, database.Classify("select products", errors.Wrapf(err, "store %d", storeID))
	}
	return products, nil
}
