package order

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storefront/internal/modules/inventory"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return NewPostgresRepository(sqlx.NewDb(raw, "postgres")), mock
}

func TestPostgresCreateOrder(t *testing.T) {
	ctx := context.Background()
	placedAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	t.Run("commits decrement and insert", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE product SET numberofunits = numberofunits - \$1`).
			WithArgs(5, 1, "Widget").
			WillReturnRows(sqlmock.NewRows([]string{"numberofunits"}).AddRow(15))
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(7, 1, "Widget", 5).
			WillReturnRows(sqlmock.NewRows([]string{"ordernumber", "ordertime"}).AddRow(42, placedAt))
		mock.ExpectCommit()

		o := &Order{CustomerID: 7, StoreID: 1, ProductName: "Widget", UnitsOrdered: 5}
		remaining, err := repo.CreateOrder(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, 15, remaining)
		assert.Equal(t, 42, o.Number)
		assert.Equal(t, "2024-03-01 12:30:00", o.OrderTime.Format(TimeLayout))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when product is missing", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE product`).
			WithArgs(5, 1, "Gizmo").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.CreateOrder(ctx, &Order{CustomerID: 7, StoreID: 1, ProductName: "Gizmo", UnitsOrdered: 5})
		assert.ErrorIs(t, err, inventory.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresListRecentByCustomer(t *testing.T) {
	repo, mock := newMockRepository(t)
	cols := []string{"ordernumber", "customerid", "storeid", "productname", "unitsordered", "ordertime"}
	mock.ExpectQuery(`FROM orders WHERE customerid=\$1\s+ORDER BY ordertime DESC, ordernumber DESC\s+LIMIT \$2`).
		WithArgs(7, 5).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(43, 7, 1, "Widget", 2, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)).
			AddRow(42, 7, 1, "Widget", 5, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	orders, err := repo.ListRecentByCustomer(context.Background(), 7, 5)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 43, orders[0].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}
