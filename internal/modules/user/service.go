package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	CreateUser(ctx context.Context, name, password string, latitude, longitude float64) (*User, error)
}
