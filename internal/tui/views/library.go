package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/nexus/internal/library"
	"github.com/asteroid-belt/nexus/internal/models"
	"github.com/asteroid-belt/nexus/internal/tui/components"
	"github.com/asteroid-belt/nexus/internal/tui/task"
	"github.com/asteroid-belt/nexus/internal/tui/theme"
)

// LibraryAction tells the app what to do after a key press.
type LibraryAction int

const (
	LibraryActionNone LibraryAction = iota
	LibraryActionSettings
	LibraryActionHelp
	LibraryActionQuit
)

// LibraryView lists games with search, favorites, hiding and rescans.
type LibraryView struct {
	library   Library
	rescanner Rescanner

	games     []models.Game
	cursor    int
	offset    int
	searchBar *components.SearchBar
	seq       int

	confirm     *components.ConfirmDialog
	pendingHide *models.Game

	loading  bool
	scanning bool
	spinner  spinner.Model
	status   string
	err      error

	width  int
	height int
}

// NewLibraryView creates a new library view. A nil rescanner disables rescans.
func NewLibraryView(lib Library, rescanner Rescanner) *LibraryView {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Current.Accent)

	return &LibraryView{
		library:   lib,
		rescanner: rescanner,
		searchBar: components.NewSearchBar(),
		spinner:   sp,
		width:     80,
		height:    24,
	}
}

// SetSize sets the width and height of the view.
func (lv *LibraryView) SetSize(width, height int) {
	lv.width = width
	lv.height = height
	lv.searchBar.SetWidth(width / 2)
}

// Init loads the game list.
func (lv *LibraryView) Init() tea.Cmd {
	return lv.Reload()
}

// Games returns the games currently listed.
func (lv *LibraryView) Games() []models.Game {
	return lv.games
}

// IsScanning reports whether a rescan is running.
func (lv *LibraryView) IsScanning() bool {
	return lv.scanning
}

// IsSearching reports whether the search bar has focus.
func (lv *LibraryView) IsSearching() bool {
	return lv.searchBar.Focused()
}

// Reload re-runs the current query.
func (lv *LibraryView) Reload() tea.Cmd {
	lv.loading = true
	lv.seq++
	return lv.loadCmd(lv.searchBar.Query(), lv.seq)
}

func (lv *LibraryView) loadCmd(query string, seq int) tea.Cmd {
	lib := lv.library
	return task.Run("load games", func() tea.Msg {
		games, err := lib.SearchGames(query)
		return GamesLoadedMsg{Query: query, Seq: seq, Games: games, Err: err}
	})
}

func (lv *LibraryView) toggleFavoriteCmd(game models.Game) tea.Cmd {
	lib := lv.library
	return task.Run("toggle favorite", func() tea.Msg {
		err := lib.ToggleFavorite(&game)
		return FavoriteToggledMsg{GameID: game.ID, Favorite: game.Favorite, Err: err}
	})
}

func (lv *LibraryView) ignoreCmd(game *models.Game) tea.Cmd {
	lib := lv.library
	return task.Run("hide game", func() tea.Msg {
		result, err := lib.IgnoreGame(game)
		return IgnoreCompleteMsg{Title: game.Title, Result: result, Err: err}
	})
}

// StartRescan begins a scan unless one is already running.
func (lv *LibraryView) StartRescan() tea.Cmd {
	if lv.scanning || lv.rescanner == nil {
		return nil
	}
	lv.scanning = true
	lv.status = ""
	rescanner := lv.rescanner
	return tea.Batch(
		task.Run("rescan", func() tea.Msg {
			result, err := rescanner.Rescan()
			return RescanCompleteMsg{Result: result, Err: err}
		}),
		lv.spinner.Tick,
	)
}

func (lv *LibraryView) selected() *models.Game {
	if lv.cursor < 0 || lv.cursor >= len(lv.games) {
		return nil
	}
	return &lv.games[lv.cursor]
}

// Update handles key input.
func (lv *LibraryView) Update(msg tea.KeyMsg) (LibraryAction, tea.Cmd) {
	key := msg.String()

	if lv.confirm != nil {
		done, confirmed := lv.confirm.HandleKey(key)
		if !done {
			return LibraryActionNone, nil
		}
		lv.confirm = nil
		game := lv.pendingHide
		lv.pendingHide = nil
		if confirmed && game != nil {
			return LibraryActionNone, lv.ignoreCmd(game)
		}
		return LibraryActionNone, nil
	}

	if lv.searchBar.Focused() {
		switch key {
		case "esc":
			lv.searchBar.Blur()
			if lv.searchBar.Query() != "" {
				lv.searchBar.Clear()
				return LibraryActionNone, lv.Reload()
			}
			return LibraryActionNone, nil
		case "enter", "down":
			lv.searchBar.Blur()
			return LibraryActionNone, nil
		}
		changed, cmd := lv.searchBar.HandleKey(msg)
		if changed {
			lv.cursor, lv.offset = 0, 0
			return LibraryActionNone, tea.Batch(cmd, lv.Reload())
		}
		return LibraryActionNone, cmd
	}

	switch key {
	case "q", "ctrl+c":
		return LibraryActionQuit, nil
	case "?":
		return LibraryActionHelp, nil
	case "s":
		return LibraryActionSettings, nil
	case "/":
		return LibraryActionNone, lv.searchBar.Focus()
	case "up", "k":
		if lv.cursor > 0 {
			lv.cursor--
		}
	case "down", "j":
		if lv.cursor < len(lv.games)-1 {
			lv.cursor++
		}
	case "f":
		if game := lv.selected(); game != nil {
			return LibraryActionNone, lv.toggleFavoriteCmd(*game)
		}
	case "x", "delete":
		if game := lv.selected(); game != nil {
			hide := *game
			lv.pendingHide = &hide
			lv.confirm = components.NewConfirmDialog(
				fmt.Sprintf("Hide %s?", game.Title),
				"The game is removed from your library and skipped by future scans.\n"+
					"You can restore it from Settings.",
			).WithLabels("Hide", "Cancel")
		}
	case "r":
		return LibraryActionNone, lv.StartRescan()
	case "esc":
		if lv.searchBar.Query() != "" {
			lv.searchBar.Clear()
			return LibraryActionNone, lv.Reload()
		}
	}

	return LibraryActionNone, nil
}

// HandleMsg applies a completion message. Returns a follow-up command.
func (lv *LibraryView) HandleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case GamesLoadedMsg:
		if msg.Seq != lv.seq {
			return nil
		}
		lv.loading = false
		lv.err = msg.Err
		if msg.Err == nil {
			lv.games = msg.Games
			lv.searchBar.SetMatches(len(msg.Games))
		}
		if lv.cursor >= len(lv.games) {
			lv.cursor = max(len(lv.games)-1, 0)
		}

	case FavoriteToggledMsg:
		if msg.Err != nil {
			lv.status = "Could not update favorite"
			return nil
		}
		for i := range lv.games {
			if lv.games[i].ID == msg.GameID {
				lv.games[i].Favorite = msg.Favorite
			}
		}

	case IgnoreCompleteMsg:
		if msg.Err != nil {
			lv.status = fmt.Sprintf("Could not hide %s", msg.Title)
			return nil
		}
		lv.status = hideStatus(msg.Title, msg.Result)
		return lv.Reload()

	case RescanCompleteMsg:
		lv.scanning = false
		if msg.Err != nil {
			lv.status = "Scan failed"
			return nil
		}
		lv.status = fmt.Sprintf("Scan complete: %d new, %d hidden skipped", msg.Result.Added, msg.Result.Ignored)
		return lv.Reload()

	case spinner.TickMsg:
		if !lv.scanning {
			return nil
		}
		var cmd tea.Cmd
		lv.spinner, cmd = lv.spinner.Update(msg)
		return cmd
	}
	return nil
}

func hideStatus(title string, result library.IgnoreResult) string {
	switch result.Entry {
	case library.OutcomeAlreadyIgnored:
		return fmt.Sprintf("%s was already hidden", title)
	case library.OutcomeFailed:
		return fmt.Sprintf("%s removed, but it may return on the next scan", title)
	default:
		return fmt.Sprintf("%s hidden", title)
	}
}

// View renders the library view.
func (lv *LibraryView) View() string {
	if lv.confirm != nil {
		return lv.confirm.CenteredView(lv.width, lv.height)
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("Nexus"),
		"  ",
		mutedStyle.Render(fmt.Sprintf("%d games", len(lv.games))),
	)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(lv.searchBar.View())
	b.WriteString("\n\n")

	switch {
	case lv.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Current.Error).Render("Failed to load games: " + lv.err.Error()))
	case lv.loading && len(lv.games) == 0:
		b.WriteString(mutedStyle.Render("Loading..."))
	case len(lv.games) == 0 && lv.searchBar.Query() != "":
		b.WriteString(mutedStyle.Render("No games match your search."))
	case len(lv.games) == 0:
		b.WriteString(mutedStyle.Render("Your library is empty. Press r to scan your library folders."))
	default:
		b.WriteString(lv.renderList())
	}
	b.WriteString("\n\n")

	if lv.scanning {
		b.WriteString(lv.spinner.View() + " Scanning...")
		b.WriteString("\n")
	} else if lv.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Current.Info).Render(lv.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("/ search • ↑↓ nav • f favorite • x hide • r rescan • s settings • ? help • q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderList renders the visible window of games. Each item takes two lines.
func (lv *LibraryView) renderList() string {
	visible := (lv.height - 10) / 2
	if visible < 3 {
		visible = 3
	}
	if lv.cursor < lv.offset {
		lv.offset = lv.cursor
	}
	if lv.cursor >= lv.offset+visible {
		lv.offset = lv.cursor - visible + 1
	}

	end := min(lv.offset+visible, len(lv.games))
	items := make([]string, 0, end-lv.offset)
	for i := lv.offset; i < end; i++ {
		items = append(items, components.RenderGameItem(lv.games[i], i == lv.cursor, lv.width))
	}
	return strings.Join(items, "\n")
}

// GetKeyboardCommands returns the keyboard commands for this view.
func (lv *LibraryView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Library",
		Commands: []Command{
			{Key: "/", Description: "Search by title"},
			{Key: "↑↓, j/k", Description: "Move selection"},
			{Key: "f", Description: "Toggle favorite"},
			{Key: "x, Delete", Description: "Hide game (with confirmation)"},
			{Key: "r", Description: "Rescan library folders"},
			{Key: "s", Description: "Open settings"},
			{Key: "Esc", Description: "Clear search"},
		},
	}
}
