package user

import (
	"github.com/georgemunganga/storefront/internal/apperr"
	"github.com/georgemunganga/storefront/internal/geo"
)

// User types stored in users.type.
const (
	TypeCustomer = "Customer"
	TypeManager  = "Manager"
)

var ErrUserNotFound = apperr.Validation("User does not exist")

// User is a row of the users table. Password holds a bcrypt hash for
// accounts created by this client, or plaintext for rows loaded elsewhere.
type User struct {
	ID        int     `db:"userid"`
	Name      string  `db:"name"`
	Password  string  `db:"password"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
	Type      string  `db:"type"`
}

func (u *User) Location() geo.Point {
	return geo.Point{Latitude: u.Latitude, Longitude: u.Longitude}
}
