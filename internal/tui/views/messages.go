package views

import (
	"github.com/asteroid-belt/nexus/internal/library"
	"github.com/asteroid-belt/nexus/internal/models"
	"github.com/asteroid-belt/nexus/internal/scan"
)

// Completion messages for background tasks. Each implements task.Failure
// so failures are logged by the task runner.

// SettingsLoadedMsg is sent when the stored preferences have been read.
type SettingsLoadedMsg struct {
	Settings *models.AppSettings
	Err      error
}

// SettingSavedMsg is sent when a toggle has been persisted.
type SettingSavedMsg struct {
	Name  string
	Value bool
	Err   error
}

// HiddenGamesLoadedMsg is sent when the ignored-game list has been read.
type HiddenGamesLoadedMsg struct {
	Games []models.IgnoredGame
	Err   error
}

// RestoreCompleteMsg is sent when a hidden game has been restored.
type RestoreCompleteMsg struct {
	Title string
	Err   error
}

// ClearCompleteMsg is sent when the library clear finishes.
type ClearCompleteMsg struct {
	Removed int64
	Err     error
}

// PathCopiedMsg is sent when an install path was copied to the clipboard.
type PathCopiedMsg struct {
	Path string
	Err  error
}

// GamesLoadedMsg carries a library listing or search result.
type GamesLoadedMsg struct {
	Query string
	Seq   int
	Games []models.Game
	Err   error
}

// FavoriteToggledMsg is sent when a favorite flag has been persisted.
type FavoriteToggledMsg struct {
	GameID   uint
	Favorite bool
	Err      error
}

// IgnoreCompleteMsg is sent when a game has been hidden.
type IgnoreCompleteMsg struct {
	Title  string
	Result library.IgnoreResult
	Err    error
}

// RescanCompleteMsg is sent when a library scan finishes.
type RescanCompleteMsg struct {
	Result scan.IngestResult
	Err    error
}

func (m SettingsLoadedMsg) Failed() error    { return m.Err }
func (m SettingSavedMsg) Failed() error      { return m.Err }
func (m HiddenGamesLoadedMsg) Failed() error { return m.Err }
func (m RestoreCompleteMsg) Failed() error   { return m.Err }
func (m ClearCompleteMsg) Failed() error     { return m.Err }
func (m PathCopiedMsg) Failed() error        { return m.Err }
func (m GamesLoadedMsg) Failed() error       { return m.Err }
func (m FavoriteToggledMsg) Failed() error   { return m.Err }
func (m IgnoreCompleteMsg) Failed() error    { return m.Err }
func (m RescanCompleteMsg) Failed() error    { return m.Err }
