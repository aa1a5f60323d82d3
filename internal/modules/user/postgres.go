package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/georgemunganga/storefront/internal/database"
)

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (name, password, latitude, longitude, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING userid
	`
	err := r.db.QueryRowxContext(ctx, query, user.Name, user.Password, user.Latitude, user.Longitude, user.Type).
		Scan(&user.ID)
	if err != nil {
		return database.Classify("insert user", errors.Wrapf(err, "user %q", user.Name))
	}
	return nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id int) (*User, error) {
	user := &User{}
	query := `
		SELECT userid, name, password, latitude, longitude, type
		FROM users
		WHERE userid = $1
	`
	if err := r.db.GetContext(ctx, user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, database.Classify("select user", errors.Wrapf(err, "user %d", id))
	}
	return user, nil
}

func (r *postgresRepository) ListUsersByName(ctx context.Context, name string) ([]*User, error) {
	var users []*User
	query := `
		SELECT userid, name, password, latitude, longitude, type
		FROM users
		WHERE name = $1
		ORDER BY userid
	`
	if err := r.db.SelectContext(ctx, &users, query, name); err != nil {
		return nil, database.Classify("select users by name", err)
	}
	return users, nil
}
