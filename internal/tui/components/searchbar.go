package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/nexus/internal/tui/theme"
)

// SearchBar filters the library by title and shows how many games match.
type SearchBar struct {
	input   textinput.Model
	matches int
}

// NewSearchBar creates an unfocused search bar.
func NewSearchBar() *SearchBar {
	in := textinput.New()
	in.Placeholder = "Search games..."
	in.Prompt = "/ "
	in.CharLimit = 100
	in.Width = 40
	in.PromptStyle = lipgloss.NewStyle().Foreground(theme.Current.Primary)
	in.TextStyle = lipgloss.NewStyle().Foreground(theme.Current.Text)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Current.Accent)
	return &SearchBar{input: in}
}

// HandleKey feeds msg to the input and reports whether the query changed.
// The returned command drives the cursor blink.
func (sb *SearchBar) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	before := sb.Query()
	var cmd tea.Cmd
	sb.input, cmd = sb.input.Update(msg)
	return sb.Query() != before, cmd
}

// Focus starts editing.
func (sb *SearchBar) Focus() tea.Cmd {
	return sb.input.Focus()
}

// Blur stops editing and keeps the query.
func (sb *SearchBar) Blur() {
	sb.input.Blur()
}

// Focused reports whether the bar is being edited.
func (sb *SearchBar) Focused() bool {
	return sb.input.Focused()
}

// Query returns the trimmed search text.
func (sb *SearchBar) Query() string {
	return strings.TrimSpace(sb.input.Value())
}

// Clear empties the query.
func (sb *SearchBar) Clear() {
	sb.input.Reset()
}

// SetMatches records the result count shown next to an active query.
func (sb *SearchBar) SetMatches(n int) {
	sb.matches = n
}

// SetWidth fits the input inside a frame of width w.
func (sb *SearchBar) SetWidth(w int) {
	if w > 6 {
		sb.input.Width = w - 6
	}
}

// View renders the framed input, with the match count while a query is set.
func (sb *SearchBar) View() string {
	frame := theme.Current.TextMuted
	if sb.input.Focused() {
		frame = theme.Current.Accent
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(frame).
		Padding(0, 1).
		Render(sb.input.View())

	if sb.Query() == "" {
		return box
	}
	count := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		PaddingLeft(1).
		Render(fmt.Sprintf("%d matches", sb.matches))
	return lipgloss.JoinHorizontal(lipgloss.Center, box, count)
}
