package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keymap defines the app-level key bindings. View-local keys are handled
// by the views themselves.
type Keymap struct {
	Help      key.Binding
	ForceQuit key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
