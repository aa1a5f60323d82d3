package user

import (
	"context"

	"github.com/georgemunganga/storefront/internal/console"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterCommands(menu *console.Menu) {
	menu.Handle(1, "Create user", h.createUser)
}

func (h *Handler) createUser(ctx context.Context, s *console.Session) error {
	name, err := s.Prompt("\tEnter name: ")
	if err != nil {
		return err
	}
	password, err := s.Prompt("\tEnter password: ")
	if err != nil {
		return err
	}
	latitude, err := s.PromptFloat("\tEnter latitude: ", "latitude")
	if err != nil {
		return err
	}
	longitude, err := s.PromptFloat("\tEnter longitude: ", "longitude")
	if err != nil {
		return err
	}

	if _, err := h.service.CreateUser(ctx, name, password, latitude, longitude); err != nil {
		return err
	}
	s.Println("User successfully created!")
	return nil
}
