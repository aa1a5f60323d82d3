package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return NewPostgresRepository(sqlx.NewDb(raw, "postgres")), mock
}

var userColumns = []string{"userid", "name", "password", "latitude", "longitude", "type"}

func TestPostgresCreateUser(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`INSERT INTO users \(name, password, latitude, longitude, type\)`).
		WithArgs("alice", "hash", 10.0, 20.0, TypeCustomer).
		WillReturnRows(sqlmock.NewRows([]string{"userid"}).AddRow(41))

	u := &User{Name: "alice", Password: "hash", Latitude: 10, Longitude: 20, Type: TypeCustomer}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	assert.Equal(t, 41, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT userid, name, password, latitude, longitude, type\s+FROM users\s+WHERE userid = \$1`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "bob", "pw", 1.5, 2.5, TypeManager))

		u, err := repo.GetUserByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "bob", u.Name)
		assert.Equal(t, TypeManager, u.Type)
		assert.Equal(t, 2.5, u.Longitude)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`FROM users`).WithArgs(9).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByID(ctx, 9)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestPostgresListUsersByName(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`WHERE name = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice", "secret", 10.0, 10.0, TypeCustomer).
			AddRow(5, "alice", "$2a$10$abc", 0.0, 0.0, TypeCustomer))

	users, err := repo.ListUsersByName(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 5, users[1].ID)
}
