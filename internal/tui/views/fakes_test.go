package views

import (
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asteroid-belt/nexus/internal/library"
	"github.com/asteroid-belt/nexus/internal/models"
)

var errStore = errors.New("database is locked")

// fakeLibrary is an in-memory Library.
type fakeLibrary struct {
	mu       sync.Mutex
	games    []models.Game
	hidden   []models.IgnoredGame
	clearErr error
	restErr  error
	hideErr  error
	cleared  int
	restored []uint
}

func (f *fakeLibrary) GetAllGames() ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Game(nil), f.games...), nil
}

func (f *fakeLibrary) SearchGames(query string) ([]models.Game, error) {
	if strings.TrimSpace(query) == "" {
		return f.GetAllGames()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Game
	for _, g := range f.games {
		if strings.Contains(strings.ToLower(g.Title), strings.ToLower(query)) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeLibrary) ToggleFavorite(game *models.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	game.Favorite = !game.Favorite
	for i := range f.games {
		if f.games[i].ID == game.ID {
			f.games[i].Favorite = game.Favorite
		}
	}
	return nil
}

func (f *fakeLibrary) IgnoreGame(game *models.Game) (library.IgnoreResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideErr != nil {
		return library.IgnoreResult{Entry: library.OutcomeSaved}, f.hideErr
	}
	f.hidden = append(f.hidden, *models.NewIgnoredGame(game))
	kept := f.games[:0]
	for _, g := range f.games {
		if g.ID != game.ID {
			kept = append(kept, g)
		}
	}
	f.games = kept
	return library.IgnoreResult{Entry: library.OutcomeSaved, Removed: true}, nil
}

func (f *fakeLibrary) RestoreIgnoredGame(entry *models.IgnoredGame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.restErr != nil {
		return f.restErr
	}
	f.restored = append(f.restored, entry.ID)
	kept := f.hidden[:0]
	for _, h := range f.hidden {
		if h.ID != entry.ID {
			kept = append(kept, h)
		}
	}
	f.hidden = kept
	return nil
}

func (f *fakeLibrary) GetAllIgnoredGames() ([]models.IgnoredGame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.IgnoredGame(nil), f.hidden...), nil
}

func (f *fakeLibrary) ClearAllGames() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	if f.clearErr != nil {
		return 0, f.clearErr
	}
	var removed int64
	kept := f.games[:0]
	for _, g := range f.games {
		if g.Platform == models.PlatformManual {
			kept = append(kept, g)
			continue
		}
		removed++
	}
	f.games = kept
	return removed, nil
}

// fakeSettings is an in-memory SettingsStore.
type fakeSettings struct {
	mu       sync.Mutex
	settings *models.AppSettings
	getErr   error
	saveErr  error
	saved    map[string]bool
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{settings: models.DefaultAppSettings(), saved: map[string]bool{}}
}

func (f *fakeSettings) GetSettings() (*models.AppSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s := *f.settings
	return &s, nil
}

func (f *fakeSettings) UpdateSetting(name string, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[name] = value
	return nil
}

// runCmd executes cmd synchronously and returns the resulting messages,
// flattening one level of tea.Batch.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c != nil {
			out = append(out, c())
		}
	}
	return out
}
