package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/nexus/internal/models"
	"github.com/asteroid-belt/nexus/internal/tui/theme"
)

// RenderGameItem renders one row of the library list.
func RenderGameItem(game models.Game, selected bool, width int) string {
	star := "  "
	if game.Favorite {
		star = lipgloss.NewStyle().Foreground(theme.Current.Favorite).Render("★ ")
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Current.Text)
	if selected {
		titleStyle = titleStyle.Foreground(theme.Current.TextHighlight).Bold(true)
	}

	platform := lipgloss.NewStyle().
		Foreground(theme.Current.Secondary).
		Render(fmt.Sprintf("[%s]", game.Platform.DisplayName()))

	line := star + titleStyle.Render(Truncate(game.Title, 48)) + " " + platform

	detail := game.InstallPath
	if game.Developer != "" {
		detail = game.Developer
	}
	if detail != "" {
		line += "\n    " + lipgloss.NewStyle().
			Foreground(theme.Current.TextMuted).
			Italic(true).
			Render(Truncate(detail, width-8))
	}

	prefix := "  "
	if selected {
		prefix = lipgloss.NewStyle().Foreground(theme.Current.Accent).Render("▸ ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, line)
}

// Truncate shortens s to max runes, ending with an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
