// Package theme provides color theming for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Surface lipgloss.AdaptiveColor

	Text          lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextHighlight lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	Favorite lipgloss.AdaptiveColor
}

// Nebula is the default color scheme.
var Nebula = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#3B2C8F", Dark: "#7C6CF2"}, // Indigo
	Secondary: lipgloss.AdaptiveColor{Light: "#0E6E7A", Dark: "#2EC4D6"}, // Teal
	Accent:    lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F1C40F"}, // Gold

	Surface: lipgloss.AdaptiveColor{Light: "#EDEDF5", Dark: "#1B1B2A"},

	Text:          lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#7A7A8C"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#3DDC84"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC5500", Dark: "#FF9F43"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0033", Dark: "#FF4D6D"},
	Info:    lipgloss.AdaptiveColor{Light: "#0088CC", Dark: "#4FC3F7"},

	Favorite: lipgloss.AdaptiveColor{Light: "#C41E7A", Dark: "#FF6AC1"},
}

// Current is the active theme.
var Current = Nebula

// SetDarkMode picks the Dark or Light half of every adaptive color,
// overriding terminal background detection.
func SetDarkMode(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}
