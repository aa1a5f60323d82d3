package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/georgemunganga/storefront/internal/apperr"
)

// State is the position of a session in the menu loop.
type State int

const (
	Unauthenticated State = iota
	Authenticated
	Terminated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// MaxLineLength bounds a single line of terminal input.
const MaxLineLength = 64 * 1024

var errLineTooLong = errors.New("line is too long")

// Principal identifies the signed-in user.
type Principal struct {
	UserID int
	Name   string
}

// Session owns the terminal streams and the sign-in state of one user at
// the keyboard. Commands receive it explicitly.
type Session struct {
	ID uuid.UUID

	in  *bufio.Reader
	out io.Writer

	state     State
	token     string
	principal Principal
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		ID:  uuid.New(),
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Session) State() State { return s.state }

// Principal returns the signed-in user, if any.
func (s *Session) Principal() (Principal, bool) {
	return s.principal, s.state == Authenticated
}

func (s *Session) Token() string { return s.token }

// SignIn moves the session to the user menu.
func (s *Session) SignIn(token string, p Principal) {
	s.token = token
	s.principal = p
	s.state = Authenticated
}

// SignOut returns the session to the main menu.
func (s *Session) SignOut() {
	s.token = ""
	s.principal = Principal{}
	s.state = Unauthenticated
}

func (s *Session) terminate() { s.state = Terminated }

func (s *Session) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// Prompt prints label and reads one line. It returns io.EOF once input is
// exhausted. A line longer than MaxLineLength is consumed and rejected as
// malformed input.
func (s *Session) Prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) readLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", apperr.MalformedInput("input", errLineTooLong)
	}
	return string(buf), nil
}

func (s *Session) PromptInt(label, field string) (int, error) {
	line, err := s.Prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, apperr.MalformedInput(field, err)
	}
	return n, nil
}

// PromptPositiveInt is PromptInt for counts and quantities.
func (s *Session) PromptPositiveInt(label, field string) (int, error) {
	n, err := s.PromptInt(label, field)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, apperr.MalformedInput(field, fmt.Errorf("%d is not a positive number", n))
	}
	return n, nil
}

func (s *Session) PromptFloat(label, field string) (float64, error) {
	line, err := s.Prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, apperr.MalformedInput(field, err)
	}
	return f, nil
}

// ReadChoice keeps asking until a number is entered.
func (s *Session) ReadChoice() (int, error) {
	for {
		line, err := s.Prompt("Please make your choice: ")
		if err != nil && !apperr.Is(err, apperr.KindMalformedInput) {
			return 0, err
		}
		if err == nil {
			if choice, err := strconv.Atoi(line); err == nil {
				return choice, nil
			}
		}
		s.Println("Your input is invalid!")
	}
}
