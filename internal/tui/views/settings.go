package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/nexus/internal/log"
	"github.com/asteroid-belt/nexus/internal/models"
	"github.com/asteroid-belt/nexus/internal/tui/components"
	"github.com/asteroid-belt/nexus/internal/tui/task"
	"github.com/asteroid-belt/nexus/internal/tui/theme"
)

// Rows above the hidden-game list.
const (
	rowLaunchOnStartup = iota
	rowCloseToTray
	rowDarkMode
	rowClearLibrary
	fixedRows
)

type settingsAction int

const (
	actionNone settingsAction = iota
	actionRestore
	actionClear
)

// toggleRow describes one boolean preference.
type toggleRow struct {
	name  string
	label string
	get   func(*models.AppSettings) bool
	set   func(*models.AppSettings, bool)
}

var toggleRows = []toggleRow{
	{
		name:  models.SettingLaunchOnStartup,
		label: "Launch on startup",
		get:   func(s *models.AppSettings) bool { return s.LaunchOnStartup },
		set:   func(s *models.AppSettings, v bool) { s.LaunchOnStartup = v },
	},
	{
		name:  models.SettingCloseToTray,
		label: "Close to tray",
		get:   func(s *models.AppSettings) bool { return s.CloseToTray },
		set:   func(s *models.AppSettings, v bool) { s.CloseToTray = v },
	},
	{
		name:  models.SettingDarkMode,
		label: "Dark mode",
		get:   func(s *models.AppSettings) bool { return s.DarkMode },
		set:   func(s *models.AppSettings, v bool) { s.DarkMode = v },
	},
}

// SettingsView shows preferences, hidden games and the clear-library action.
type SettingsView struct {
	settings SettingsStore
	library  Library
	dbPath   string

	current models.AppSettings
	hidden  []models.IgnoredGame
	cursor  int

	// Dialogs
	confirm      *components.ConfirmDialog
	pending      settingsAction
	pendingEntry *models.IgnoredGame
	result       *components.MessageDialog

	clearing bool
	spinner  spinner.Model
	status   string

	copyToClipboard func(string) error

	width  int
	height int
}

// NewSettingsView creates a new settings view.
func NewSettingsView(settings SettingsStore, lib Library, dbPath string) *SettingsView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Current.Accent)

	return &SettingsView{
		settings:        settings,
		library:         lib,
		dbPath:          dbPath,
		current:         *models.DefaultAppSettings(),
		spinner:         sp,
		copyToClipboard: clipboard.WriteAll,
		width:           80,
		height:          24,
	}
}

// SetSize sets the width and height of the view.
func (sv *SettingsView) SetSize(width, height int) {
	sv.width = width
	sv.height = height
}

// Init resets transient state and loads settings and hidden games.
func (sv *SettingsView) Init() tea.Cmd {
	sv.cursor = 0
	sv.status = ""
	sv.confirm = nil
	sv.result = nil
	return tea.Batch(sv.loadSettingsCmd(), sv.loadHiddenGamesCmd())
}

// Settings returns the settings currently shown.
func (sv *SettingsView) Settings() models.AppSettings {
	return sv.current
}

// HiddenGames returns the hidden games currently listed.
func (sv *SettingsView) HiddenGames() []models.IgnoredGame {
	return sv.hidden
}

// IsClearing reports whether a library clear is running.
func (sv *SettingsView) IsClearing() bool {
	return sv.clearing
}

// HasDialog reports whether a dialog is open.
func (sv *SettingsView) HasDialog() bool {
	return sv.confirm != nil || sv.result != nil
}

func (sv *SettingsView) loadSettingsCmd() tea.Cmd {
	store := sv.settings
	return task.Run("load settings", func() tea.Msg {
		s, err := store.GetSettings()
		return SettingsLoadedMsg{Settings: s, Err: err}
	})
}

func (sv *SettingsView) loadHiddenGamesCmd() tea.Cmd {
	lib := sv.library
	return task.Run("load hidden games", func() tea.Msg {
		games, err := lib.GetAllIgnoredGames()
		return HiddenGamesLoadedMsg{Games: games, Err: err}
	})
}

func (sv *SettingsView) saveSettingCmd(name string, value bool) tea.Cmd {
	store := sv.settings
	return task.Run("save setting", func() tea.Msg {
		return SettingSavedMsg{Name: name, Value: value, Err: store.UpdateSetting(name, value)}
	})
}

func (sv *SettingsView) restoreCmd(entry *models.IgnoredGame) tea.Cmd {
	lib := sv.library
	return task.Run("restore hidden game", func() tea.Msg {
		return RestoreCompleteMsg{Title: entry.Title, Err: lib.RestoreIgnoredGame(entry)}
	})
}

func (sv *SettingsView) clearCmd() tea.Cmd {
	lib := sv.library
	return task.Run("clear library", func() tea.Msg {
		removed, err := lib.ClearAllGames()
		return ClearCompleteMsg{Removed: removed, Err: err}
	})
}

func (sv *SettingsView) copyPathCmd(path string) tea.Cmd {
	copyFn := sv.copyToClipboard
	return task.Run("copy install path", func() tea.Msg {
		return PathCopiedMsg{Path: path, Err: copyFn(path)}
	})
}

// Update handles key input. Returns (true if should go back, tea.Cmd).
func (sv *SettingsView) Update(key string) (bool, tea.Cmd) {
	if sv.result != nil {
		if sv.result.HandleKey(key) {
			sv.result = nil
		}
		return false, nil
	}

	if sv.confirm != nil {
		done, confirmed := sv.confirm.HandleKey(key)
		if !done {
			return false, nil
		}
		sv.confirm = nil
		action, entry := sv.pending, sv.pendingEntry
		sv.pending, sv.pendingEntry = actionNone, nil
		if !confirmed {
			return false, nil
		}
		return false, sv.runAction(action, entry)
	}

	switch key {
	case "esc", "q":
		return true, nil
	case "up", "k":
		if sv.cursor > 0 {
			sv.cursor--
		}
	case "down", "j":
		if sv.cursor < sv.rowCount()-1 {
			sv.cursor++
		}
	case "enter", " ":
		return false, sv.activate()
	case "c":
		if entry := sv.selectedHidden(); entry != nil && entry.InstallPath != nil {
			return false, sv.copyPathCmd(*entry.InstallPath)
		}
	case "r":
		return false, sv.loadHiddenGamesCmd()
	}

	return false, nil
}

func (sv *SettingsView) rowCount() int {
	return fixedRows + len(sv.hidden)
}

func (sv *SettingsView) selectedHidden() *models.IgnoredGame {
	idx := sv.cursor - fixedRows
	if idx < 0 || idx >= len(sv.hidden) {
		return nil
	}
	return &sv.hidden[idx]
}

// activate handles enter on the selected row.
func (sv *SettingsView) activate() tea.Cmd {
	switch {
	case sv.cursor < len(toggleRows):
		row := toggleRows[sv.cursor]
		value := !row.get(&sv.current)
		row.set(&sv.current, value)
		if row.name == models.SettingDarkMode {
			theme.SetDarkMode(value)
		}
		return sv.saveSettingCmd(row.name, value)

	case sv.cursor == rowClearLibrary:
		if sv.clearing {
			return nil
		}
		sv.pending = actionClear
		sv.confirm = components.NewConfirmDialog(
			"Clear all scanned games?",
			"This will remove all automatically detected games\n"+
				"from your library.\n"+
				"Manually added games will be preserved.\n"+
				"A rescan will start automatically.",
		).WithLabels("Clear", "Cancel").Destructive()

	default:
		entry := sv.selectedHidden()
		if entry == nil {
			return nil
		}
		sv.pending = actionRestore
		restore := *entry
		sv.pendingEntry = &restore
		sv.confirm = components.NewConfirmDialog(
			fmt.Sprintf("Restore %s?", entry.Title),
			"This game will appear in your library on the next scan.",
		).WithLabels("Restore", "Cancel")
	}
	return nil
}

func (sv *SettingsView) runAction(action settingsAction, entry *models.IgnoredGame) tea.Cmd {
	switch action {
	case actionRestore:
		if entry == nil {
			return nil
		}
		return sv.restoreCmd(entry)
	case actionClear:
		sv.clearing = true
		return tea.Batch(sv.clearCmd(), sv.spinner.Tick)
	}
	return nil
}

// HandleMsg applies a completion message. Returns a follow-up command.
func (sv *SettingsView) HandleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SettingsLoadedMsg:
		// A failed load keeps the defaults shown.
		if msg.Err == nil && msg.Settings != nil {
			sv.current = *msg.Settings
		}
		theme.SetDarkMode(sv.current.DarkMode)

	case HiddenGamesLoadedMsg:
		if msg.Err != nil {
			sv.hidden = nil
		} else {
			sv.hidden = msg.Games
		}
		if sv.cursor >= sv.rowCount() {
			sv.cursor = sv.rowCount() - 1
		}

	case RestoreCompleteMsg:
		if msg.Err != nil {
			sv.result = components.NewErrorDialog("Failed to restore game", msg.Err.Error())
			return nil
		}
		sv.status = fmt.Sprintf("%s restored", msg.Title)
		return sv.loadHiddenGamesCmd()

	case ClearCompleteMsg:
		sv.clearing = false
		if msg.Err != nil {
			log.L().Sugar().Warnf("clear library: %v", msg.Err)
			sv.result = components.NewErrorDialog("Failed to clear library",
				"An error occurred while clearing the library.")
			return nil
		}
		sv.result = components.NewSuccessDialog("Library Cleared",
			fmt.Sprintf("Removed %d games. A rescan has started.", msg.Removed))

	case PathCopiedMsg:
		if msg.Err != nil {
			sv.status = "Could not copy path"
		} else {
			sv.status = "Copied " + msg.Path
		}

	case spinner.TickMsg:
		if !sv.clearing {
			return nil
		}
		var cmd tea.Cmd
		sv.spinner, cmd = sv.spinner.Update(msg)
		return cmd
	}
	return nil
}

// View renders the settings view.
func (sv *SettingsView) View() string {
	if sv.result != nil {
		return sv.result.CenteredView(sv.width, sv.height)
	}
	if sv.confirm != nil {
		return sv.confirm.CenteredView(sv.width, sv.height)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		MarginTop(1)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Preferences"))
	b.WriteString("\n")
	for i, row := range toggleRows {
		state := mutedStyle.Render("off")
		if row.get(&sv.current) {
			state = lipgloss.NewStyle().Foreground(theme.Current.Success).Render("on")
		}
		b.WriteString(sv.renderRow(i, fmt.Sprintf("%-20s %s", row.label, state)))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Library"))
	b.WriteString("\n")
	clearLabel := "Clear & Rescan"
	if sv.clearing {
		clearLabel = sv.spinner.View() + " Clearing..."
	}
	b.WriteString(sv.renderRow(rowClearLibrary, clearLabel))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  Database: " + sv.dbPath))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Hidden Games (%d)", len(sv.hidden))))
	b.WriteString("\n")
	if len(sv.hidden) == 0 {
		b.WriteString(mutedStyle.Italic(true).Render("  No hidden games. Games you hide from the library appear here."))
		b.WriteString("\n")
	}
	for i, entry := range sv.hidden {
		path := entry.GetInstallPath()
		if path == "" {
			path = "Unknown path"
		}
		line := entry.Title + "\n    " + mutedStyle.Render(components.Truncate(path, sv.width-8))
		b.WriteString(sv.renderRow(fixedRows+i, line))
		b.WriteString("\n")
	}

	if sv.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Current.Info).Render(sv.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("↑↓ navigate • enter toggle/select • c copy path • r refresh • esc back"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (sv *SettingsView) renderRow(idx int, content string) string {
	if idx == sv.cursor {
		return lipgloss.NewStyle().Foreground(theme.Current.Accent).Render("▸ ") +
			lipgloss.NewStyle().Bold(true).Foreground(theme.Current.TextHighlight).Render(content)
	}
	if idx == rowClearLibrary && sv.clearing {
		return "  " + lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Render(content)
	}
	return "  " + lipgloss.NewStyle().Foreground(theme.Current.Text).Render(content)
}

// GetKeyboardCommands returns the keyboard commands for this view.
func (sv *SettingsView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Settings",
		Commands: []Command{
			{Key: "↑↓, j/k", Description: "Move between rows"},
			{Key: "Enter, Space", Description: "Toggle setting, clear library or restore hidden game"},
			{Key: "c", Description: "Copy hidden game install path"},
			{Key: "r", Description: "Refresh hidden games"},
			{Key: "Esc, q", Description: "Back to library"},
		},
	}
}
