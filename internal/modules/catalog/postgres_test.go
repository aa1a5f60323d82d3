package catalog

import (
	"context"
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

func TestPostgresApplyUpdate(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("price change uses a fixed statement", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		change, err := ParseChange(FieldPricePerUnit, "4.25")
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO productupdates`).
			WithArgs(2, 1, "Widget").
			WillReturnRows(sqlmock.NewRows([]string{"updatenumber", "updatedon"}).AddRow(12, at))
		mock.ExpectExec(`UPDATE product SET priceperunit=\$1 WHERE storeid=\$2 AND productname=\$3`).
			WithArgs(change.Price, 1, "Widget").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		u := &ProductUpdate{ManagerID: 2, StoreID: 1, ProductName: "Widget"}
		require.NoError(t, repo.ApplyUpdate(ctx, u, change))
		assert.Equal(t, 12, u.Number)
		assert.Equal(t, at, u.UpdatedOn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing product rolls back the audit row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		change, err := ParseChange(FieldProductName, "Gizmo")
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO productupdates`).
			WillReturnRows(sqlmock.NewRows([]string{"updatenumber", "updatedon"}).AddRow(13, at))
		mock.ExpectExec(`UPDATE product SET productname=\$1`).
			WithArgs("Gizmo", 1, "Nope").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.ApplyUpdate(ctx, &ProductUpdate{ManagerID: 2, StoreID: 1, ProductName: "Nope"}, change)
		assert.ErrorIs(t, err, inventory.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresListRecentByManager(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`FROM productupdates WHERE managerid=\$1`).
		WithArgs(2, 5).
		WillReturnRows(sqlmock.NewRows([]string{"updatenumber", "managerid", "storeid", "productname", "updatedon"}))

	updates, err := repo.ListRecentByManager(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Empty(t, updates)
}
