package auth

import (
	"context"

	"github.com/dgrijalva/jwt-go"

	"github.com/georgemunganga/storefront/internal/apperr"
)

var (
	ErrInvalidCredentials = apperr.Validation("Invalid name or password.")
	ErrInvalidToken       = apperr.Validation("Session is no longer valid.")
)

// Principal is the user a session token was issued to.
type Principal struct {
	UserID    int
	Name      string
	SessionID string
}

// Claims are carried by the signed session token.
type Claims struct {
	Name string `json:"name"`
	jwt.StandardClaims
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, sessionID, name, password string) (string, *Principal, error)
	Verify(ctx context.Context, token string) (*Principal, error)
}
