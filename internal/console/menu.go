package console

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// HandlerFunc runs one menu command against the session.
type HandlerFunc func(ctx context.Context, s *Session) error

type command struct {
	choice int
	label  string
	run    HandlerFunc
}

// Menu is a numbered list of commands.
type Menu struct {
	title    string
	commands []command
	footer   []command
}

func NewMenu(title string) *Menu {
	return &Menu{title: title}
}

// Handle registers fn under choice. Registering the same choice twice panics.
func (m *Menu) Handle(choice int, label string, fn HandlerFunc) {
	if _, ok := m.lookup(choice); ok || m.isBuiltin(choice) {
		panic(fmt.Sprintf("console: choice %d registered twice in %s", choice, m.title))
	}
	m.commands = append(m.commands, command{choice: choice, label: label, run: fn})
	sort.Slice(m.commands, func(i, j int) bool { return m.commands[i].choice < m.commands[j].choice })
}

func (m *Menu) builtin(choice int, label string) {
	m.footer = append(m.footer, command{choice: choice, label: label})
}

func (m *Menu) isBuiltin(choice int) bool {
	for _, c := range m.footer {
		if c.choice == choice {
			return true
		}
	}
	return false
}

func (m *Menu) lookup(choice int) (command, bool) {
	for _, c := range m.commands {
		if c.choice == choice {
			return c, true
		}
	}
	return command{}, false
}

func (m *Menu) render(w io.Writer) {
	fmt.Fprintln(w, m.title)
	fmt.Fprintln(w, "---------")
	for _, c := range m.commands {
		fmt.Fprintf(w, "%d. %s\n", c.choice, c.label)
	}
	if len(m.commands) > 0 && len(m.footer) > 1 {
		fmt.Fprintln(w, ".........................")
	}
	for _, c := range m.footer {
		fmt.Fprintf(w, "%d. %s\n", c.choice, c.label)
	}
}
