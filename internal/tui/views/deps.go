package views

import (
	"github.com/asteroid-belt/nexus/internal/library"
	"github.com/asteroid-belt/nexus/internal/models"
	"github.com/asteroid-belt/nexus/internal/scan"
)

// Library is the part of library.Service the views call.
type Library interface {
	GetAllGames() ([]models.Game, error)
	SearchGames(query string) ([]models.Game, error)
	ToggleFavorite(game *models.Game) error
	IgnoreGame(game *models.Game) (library.IgnoreResult, error)
	RestoreIgnoredGame(entry *models.IgnoredGame) error
	GetAllIgnoredGames() ([]models.IgnoredGame, error)
	ClearAllGames() (int64, error)
}

// SettingsStore reads and writes application preferences.
type SettingsStore interface {
	GetSettings() (*models.AppSettings, error)
	UpdateSetting(name string, value bool) error
}

// Rescanner scans the configured library directories and ingests new games.
type Rescanner interface {
	Rescan() (scan.IngestResult, error)
}

// RescanFunc adapts a function to Rescanner.
type RescanFunc func() (scan.IngestResult, error)

// Rescan calls f().
func (f RescanFunc) Rescan() (scan.IngestResult, error) {
	return f()
}
