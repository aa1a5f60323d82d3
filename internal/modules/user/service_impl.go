package user

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/storefront/internal/apperr"
)

type service struct {
	repo Repository
	log  log.FieldLogger
}

// NewService creates a new user service.
func NewService(repo Repository, logger log.FieldLogger) Service {
	return &service{repo: repo, log: logger}
}

// CreateUser stores a new customer. Coordinates are expected in [0, 100]
// but are not checked.
func (s *service) CreateUser(ctx context.Context, name, password string, latitude, longitude float64) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.MalformedInput("name", errors.New("name is empty"))
	}
	if password == "" {
		return nil, apperr.MalformedInput("password", errors.New("password is empty"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.MalformedInput("password", err)
	}
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:      name,
		Password:  string(hashedPassword),
		Latitude:  latitude,
		Longitude: longitude,
		Type:      TypeCustomer,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{"user": user.ID, "name": user.Name}).Info("user created")
	return user, nil
}
