package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/asteroid-belt/nexus/internal/tui/theme"
)

// Command is one key binding shown on the help screen.
type Command struct {
	Key         string
	Description string
}

// ViewCommands groups the bindings of one view under its name.
type ViewCommands struct {
	ViewName string
	Commands []Command
}

var globalCommands = ViewCommands{
	ViewName: "Global",
	Commands: []Command{
		{Key: "q, ctrl+c", Description: "Quit application"},
		{Key: "?", Description: "Show this help screen"},
	},
}

// HelpView lists the global bindings followed by those of the view that
// opened it.
type HelpView struct {
	width   int
	height  int
	current ViewCommands
}

// NewHelpView creates a new help view.
func NewHelpView() *HelpView {
	return &HelpView{width: 80, height: 24}
}

// SetSize sets the width and height of the view.
func (hv *HelpView) SetSize(width, height int) {
	hv.width = width
	hv.height = height
}

// SetViewCommands sets the bindings of the calling view.
func (hv *HelpView) SetViewCommands(commands ViewCommands) {
	hv.current = commands
}

// Update reports whether key closes the help screen.
func (hv *HelpView) Update(key string) bool {
	return key == "esc" || key == "?" || key == "q"
}

// View renders the help screen.
func (hv *HelpView) View() string {
	header := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		MarginTop(1)

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true).Render("Keyboard Shortcuts"),
	}
	for _, section := range []ViewCommands{globalCommands, hv.current} {
		if len(section.Commands) == 0 {
			continue
		}
		parts = append(parts,
			header.Render(section.ViewName+" Commands"),
			commandTable(section.Commands, hv.width-4),
		)
	}
	parts = append(parts, "", lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		Render("Press Esc, ?, or q to close"))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func commandTable(commands []Command, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true).PaddingRight(2)
	descStyle := lipgloss.NewStyle().Foreground(theme.Current.Text)

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return descStyle
		})
	if width > 20 {
		t = t.Width(width)
	}
	for _, cmd := range commands {
		t = t.Row(cmd.Key, cmd.Description)
	}
	return t.Render()
}
