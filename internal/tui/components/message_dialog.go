package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/nexus/internal/tui/theme"
)

// MessageDialog shows the terminal result of an operation until dismissed.
type MessageDialog struct {
	title   string
	message string
	isError bool
}

// NewSuccessDialog creates a dialog reporting success.
func NewSuccessDialog(title, message string) *MessageDialog {
	return &MessageDialog{title: title, message: message}
}

// NewErrorDialog creates a dialog reporting a failure.
func NewErrorDialog(title, message string) *MessageDialog {
	return &MessageDialog{title: title, message: message, isError: true}
}

// IsError reports whether the dialog shows a failure.
func (d *MessageDialog) IsError() bool {
	return d.isError
}

// Title returns the dialog title.
func (d *MessageDialog) Title() string {
	return d.title
}

// Message returns the dialog body.
func (d *MessageDialog) Message() string {
	return d.message
}

// HandleKey returns true when the key dismisses the dialog.
func (d *MessageDialog) HandleKey(key string) bool {
	switch key {
	case "enter", "esc", " ":
		return true
	}
	return false
}

// View renders the dialog.
func (d *MessageDialog) View() string {
	color := theme.Current.Success
	if d.isError {
		color = theme.Current.Error
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 3).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				lipgloss.NewStyle().Bold(true).Foreground(color).Render(d.title),
				"",
				d.message,
				"",
				lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Render("Press enter to continue"),
			),
		)
}

// CenteredView renders the dialog centered on the screen.
func (d *MessageDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, d.View())
}
