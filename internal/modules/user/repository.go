package user

import "context"

// Repository defines persistence for users.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int) (*User, error)
	ListUsersByName(ctx context.Context, name string) ([]*User, error)
}
