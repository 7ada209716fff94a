// Package tui contains the Bubble Tea user interface.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asteroid-belt/nexus/internal/tui/views"
)

// ViewType identifies the current view.
type ViewType int

const (
	ViewLibrary ViewType = iota
	ViewSettings
	ViewHelp
)

func (v ViewType) String() string {
	switch v {
	case ViewLibrary:
		return "library"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Deps are the collaborators the TUI drives.
type Deps struct {
	Library   views.Library
	Settings  views.SettingsStore
	Rescanner views.Rescanner
	DBPath    string
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	keymap Keymap

	currentView    ViewType
	helpReturnView ViewType
	libraryView    *views.LibraryView
	settingsView   *views.SettingsView
	helpView       *views.HelpView

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates a new TUI model.
func NewModel(deps Deps) *Model {
	return &Model{
		keymap:       DefaultKeymap(),
		currentView:  ViewLibrary,
		libraryView:  views.NewLibraryView(deps.Library, deps.Rescanner),
		settingsView: views.NewSettingsView(deps.Settings, deps.Library, deps.DBPath),
		helpView:     views.NewHelpView(),
	}
}

// Init loads the library and applies stored settings.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.libraryView.Init(), m.settingsView.Init())
}

// CurrentView returns the visible view.
func (m *Model) CurrentView() ViewType {
	return m.currentView
}

// Update routes messages to the views.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.libraryView.SetSize(msg.Width, msg.Height)
		m.settingsView.SetSize(msg.Width, msg.Height)
		m.helpView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case views.SettingsLoadedMsg, views.SettingSavedMsg, views.HiddenGamesLoadedMsg,
		views.RestoreCompleteMsg, views.PathCopiedMsg:
		return m, m.settingsView.HandleMsg(msg)

	case views.ClearCompleteMsg:
		cmd := m.settingsView.HandleMsg(msg)
		if msg.Err != nil {
			return m, cmd
		}
		// The cleared games come back through a fresh scan.
		return m, tea.Batch(cmd, m.libraryView.Reload(), m.libraryView.StartRescan())

	case views.GamesLoadedMsg, views.FavoriteToggledMsg, views.IgnoreCompleteMsg, views.RescanCompleteMsg:
		return m, m.libraryView.HandleMsg(msg)

	case spinner.TickMsg:
		return m, tea.Batch(m.libraryView.HandleMsg(msg), m.settingsView.HandleMsg(msg))
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.currentView {
	case ViewHelp:
		if m.helpView.Update(msg.String()) {
			m.currentView = m.helpReturnView
		}
		return m, nil

	case ViewSettings:
		if key.Matches(msg, m.keymap.Help) && !m.settingsView.HasDialog() {
			m.openHelp(m.settingsView.GetKeyboardCommands())
			return m, nil
		}
		back, cmd := m.settingsView.Update(msg.String())
		if back {
			m.currentView = ViewLibrary
		}
		return m, cmd

	default:
		action, cmd := m.libraryView.Update(msg)
		switch action {
		case views.LibraryActionQuit:
			m.quitting = true
			return m, tea.Quit
		case views.LibraryActionHelp:
			m.openHelp(m.libraryView.GetKeyboardCommands())
		case views.LibraryActionSettings:
			m.currentView = ViewSettings
			return m, m.settingsView.Init()
		}
		return m, cmd
	}
}

func (m *Model) openHelp(commands views.ViewCommands) {
	m.helpView.SetViewCommands(commands)
	m.helpReturnView = m.currentView
	m.currentView = ViewHelp
}

// View renders the current view.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	switch m.currentView {
	case ViewSettings:
		return m.settingsView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return m.libraryView.View()
	}
}

// Run executes the TUI program until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
