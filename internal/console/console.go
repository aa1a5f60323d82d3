// Package console runs the two-level menu loop: a main menu for signing up
// and logging in, and a user menu available once a session token is held.
package console

import (
	"context"
	"errors"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront/internal/apperr"
)

const (
	choiceExit     = 9
	choiceLogout   = 20
	choiceUserExit = 21
)

// Verifier checks a session token before each command in the user menu.
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

type VerifierFunc func(ctx context.Context, token string) (Principal, error)

func (f VerifierFunc) Verify(ctx context.Context, token string) (Principal, error) {
	return f(ctx, token)
}

// Console dispatches menu choices to registered commands.
type Console struct {
	main     *Menu
	user     *Menu
	verifier Verifier
	log      log.FieldLogger
}

func New(verifier Verifier, logger log.FieldLogger) *Console {
	c := &Console{
		main:     NewMenu("MAIN MENU"),
		user:     NewMenu("MAIN MENU"),
		verifier: verifier,
		log:      logger,
	}
	c.main.builtin(choiceExit, "< EXIT")
	c.user.builtin(choiceLogout, "Log out")
	c.user.builtin(choiceUserExit, "< EXIT")
	return c
}

// MainMenu holds the commands offered before login.
func (c *Console) MainMenu() *Menu { return c.main }

// UserMenu holds the commands offered to a signed-in user.
func (c *Console) UserMenu() *Menu { return c.user }

// Run loops until the user exits, input runs out or ctx is cancelled.
func (c *Console) Run(ctx context.Context, s *Session) error {
	logger := c.log.WithField("session", s.ID.String())
	for s.state != Terminated {
		if err := ctx.Err(); err != nil {
			s.terminate()
			return err
		}

		menu := c.main
		if s.state == Authenticated {
			menu = c.user
		}
		menu.render(s.out)

		choice, err := s.ReadChoice()
		if err != nil {
			s.terminate()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		c.dispatch(ctx, s, menu, choice, logger)
	}
	return nil
}

func (c *Console) dispatch(ctx context.Context, s *Session, menu *Menu, choice int, logger log.FieldLogger) {
	switch {
	case s.state == Unauthenticated && choice == choiceExit,
		s.state == Authenticated && choice == choiceUserExit:
		s.terminate()
		return
	case s.state == Authenticated && choice == choiceLogout:
		logger.WithField("user", s.principal.UserID).Info("signed out")
		s.SignOut()
		return
	}

	cmd, ok := menu.lookup(choice)
	if !ok {
		s.Println("Unrecognized choice!")
		return
	}
	entry := logger.WithField("command", cmd.label)

	if s.state == Authenticated {
		p, err := c.verifier.Verify(ctx, s.token)
		if err != nil {
			entry.WithError(err).Warn("session token rejected")
			s.Println("Your session has expired, please log in again.")
			s.SignOut()
			return
		}
		s.principal = p
		entry = entry.WithField("user", p.UserID)
	}

	c.report(s, entry, cmd.run(ctx, s))
}

func (c *Console) report(s *Session, entry log.FieldLogger, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, io.EOF) {
		s.terminate()
		return
	}

	kind := apperr.KindOf(err)
	entry = entry.WithField("kind", kind.String()).WithError(err)
	switch kind {
	case apperr.KindValidation:
		entry.Debug("command rejected")
		s.Println(message(err))
	case apperr.KindMalformedInput:
		entry.Debug("malformed input")
		s.Printf("Your input is invalid! (%s)\n", message(err))
	default:
		entry.Error("command failed")
	}
}

// message is the user-facing text of err.
func message(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return err.Error()
}
