package auth

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
	menu.Handle(2, "Log in", h.login)
}

// Verifier adapts the service to the check the console runs before each command.
func (h *Handler) Verifier() console.Verifier {
	return console.VerifierFunc(func(ctx context.Context, token string) (console.Principal, error) {
		p, err := h.service.Verify(ctx, token)
		if err != nil {
			return console.Principal{}, err
		}
		return console.Principal{UserID: p.UserID, Name: p.Name}, nil
	})
}

func (h *Handler) login(ctx context.Context, s *console.Session) error {
	name, err := s.Prompt("\tEnter name: ")
	if err != nil {
		return err
	}
	password, err := s.Prompt("\tEnter password: ")
	if err != nil {
		return err
	}

	token, p, err := h.service.Login(ctx, s.ID.String(), name, password)
	if err != nil {
		return err
	}
	s.SignIn(token, console.Principal{UserID: p.UserID, Name: p.Name})
	return nil
}
