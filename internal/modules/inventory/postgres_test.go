package inventory

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "postgres"), mock
}

func TestProductPostgresRepository(t *testing.T) {
	ctx := context.Background()
	cols := []string{"storeid", "productname", "numberofunits", "priceperunit"}

	t.Run("list", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM product WHERE storeid=\$1 ORDER BY productname`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(1, "Gadget", 3, "10.00").
				AddRow(1, "Widget", 20, "2.50"))

		products, err := NewProductPostgresRepository(db).ListProducts(ctx, 1)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Widget", products[1].Name)
		assert.Equal(t, 20, products[1].NumberOfUnits)
		assert.Equal(t, "2.50", products[1].PricePerUnit.StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStorePostgresRepository(t *testing.T) {
	ctx := context.Background()
	cols := []string{"storeid", "name", "latitude", "longitude", "managerid"}

	db, mock := newMockDB(t)
	repo := NewStorePostgresRepository(db)

	mock.ExpectQuery(`FROM store ORDER BY storeid`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "North", 10.0, 10.0, 2).
			AddRow(2, "South", 40.0, 10.0, 2))
	stores, err := repo.ListStores(ctx)
	require.NoError(t, err)
	assert.Len(t, stores, 2)

	mock.ExpectQuery(`FROM store WHERE storeid=\$1`).WithArgs(8).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetStoreByID(ctx, 8)
	assert.ErrorIs(t, err, ErrStoreNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWarehousePostgresRepository(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM warehouse WHERE warehouseid=\$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"warehouseid", "area", "latitude", "longitude"}).AddRow(3, 120.5, 1.0, 2.0))

	w, err := NewWarehousePostgresRepository(db).GetWarehouseByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 120.5, w.Area)
}
