package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/nexus/internal/tui/theme"
)

// ConfirmDialog is a two-button confirmation dialog. The cancel button is
// selected by default so a stray enter never triggers a destructive action.
type ConfirmDialog struct {
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	destructive  bool
	selected     bool // false = cancel, true = confirm
}

// NewConfirmDialog creates a confirmation dialog with Yes/No buttons.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:        title,
		message:      message,
		confirmLabel: "Yes",
		cancelLabel:  "No",
	}
}

// WithLabels replaces the button labels.
func (c *ConfirmDialog) WithLabels(confirm, cancel string) *ConfirmDialog {
	c.confirmLabel = confirm
	c.cancelLabel = cancel
	return c
}

// Destructive renders the confirm button and border in the error color.
func (c *ConfirmDialog) Destructive() *ConfirmDialog {
	c.destructive = true
	return c
}

// IsYesSelected returns whether the confirm button is selected.
func (c *ConfirmDialog) IsYesSelected() bool {
	return c.selected
}

// HandleKey processes a key press. done is true once the user has decided;
// confirmed then reports which button was chosen.
func (c *ConfirmDialog) HandleKey(key string) (done, confirmed bool) {
	switch key {
	case "left", "h", "right", "l", "tab":
		c.selected = !c.selected
	case "y":
		return true, true
	case "n", "esc":
		return true, false
	case "enter":
		return true, c.selected
	}
	return false, false
}

// View renders the dialog.
func (c *ConfirmDialog) View() string {
	accent := theme.Current.Accent
	if c.destructive {
		accent = theme.Current.Error
	}

	base := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Padding(0, 2)
	active := base.
		Background(accent).
		Foreground(lipgloss.Color("0")).
		Bold(true)

	confirmStyle, cancelStyle := base, active
	if c.selected {
		confirmStyle, cancelStyle = active, base
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		"[ ",
		cancelStyle.Render(c.cancelLabel),
		" ] [ ",
		confirmStyle.Render(c.confirmLabel),
		" ]",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 3).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				lipgloss.NewStyle().Bold(true).Foreground(accent).Render(c.title),
				"",
				c.message,
				"",
				buttons,
			),
		)
}

// CenteredView renders the dialog centered on the screen.
func (c *ConfirmDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.View())
}
