package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/nexus/internal/library"
	"github.com/asteroid-belt/nexus/internal/models"
	"github.com/asteroid-belt/nexus/internal/scan"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func sampleGames() []models.Game {
	return []models.Game{
		{ID: 1, Title: "Celeste", Platform: models.PlatformSteam, UniqueID: models.StringPtr("steam:504230")},
		{ID: 2, Title: "Hades", Platform: models.PlatformEpic, UniqueID: models.StringPtr("epic:hades")},
		{ID: 3, Title: "Hollow Knight", Platform: models.PlatformGOG, UniqueID: models.StringPtr("gog:hk")},
	}
}

func newTestLibraryView(t *testing.T, lib *fakeLibrary, rescanner Rescanner) *LibraryView {
	t.Helper()
	lv := NewLibraryView(lib, rescanner)
	lv.SetSize(100, 40)
	for _, msg := range runCmd(t, lv.Init()) {
		lv.HandleMsg(msg)
	}
	return lv
}

func TestLibraryViewLoadsGames(t *testing.T) {
	lv := newTestLibraryView(t, &fakeLibrary{games: sampleGames()}, nil)

	require.Len(t, lv.Games(), 3)
	view := lv.View()
	assert.Contains(t, view, "Celeste")
	assert.Contains(t, view, "3 games")
}

func TestLibraryViewEmptyState(t *testing.T) {
	lv := newTestLibraryView(t, &fakeLibrary{}, nil)
	assert.Contains(t, lv.View(), "Your library is empty")
}

func TestLibraryViewSearch(t *testing.T) {
	lv := newTestLibraryView(t, &fakeLibrary{games: sampleGames()}, nil)

	lv.Update(keyMsg("/"))
	require.True(t, lv.IsSearching())

	_, cmd := lv.Update(keyMsg("h"))
	assert.NotNil(t, cmd)
	lv.Update(keyMsg("o"))
	lv.Update(keyMsg("enter"))
	assert.False(t, lv.IsSearching())

	for _, msg := range runCmd(t, lv.Reload()) {
		lv.HandleMsg(msg)
	}
	require.Len(t, lv.Games(), 1)
	assert.Equal(t, "Hollow Knight", lv.Games()[0].Title)
	assert.Contains(t, lv.View(), "1 matches")
}

func TestLibraryViewDropsStaleResults(t *testing.T) {
	lv := newTestLibraryView(t, &fakeLibrary{games: sampleGames()}, nil)

	stale := lv.Reload()
	fresh := lv.Reload()

	for _, msg := range runCmd(t, fresh) {
		lv.HandleMsg(msg)
	}
	lv.HandleMsg(GamesLoadedMsg{Seq: lv.seq - 1, Games: nil})
	assert.Len(t, lv.Games(), 3)
	assert.NotNil(t, stale)
}

func TestLibraryViewToggleFavorite(t *testing.T) {
	lib := &fakeLibrary{games: sampleGames()}
	lv := newTestLibraryView(t, lib, nil)

	lv.Update(keyMsg("down"))
	_, cmd := lv.Update(keyMsg("f"))
	require.NotNil(t, cmd)

	msgs := runCmd(t, cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, FavoriteToggledMsg{GameID: 2, Favorite: true}, msgs[0])

	lv.HandleMsg(msgs[0])
	assert.True(t, lv.Games()[1].Favorite)
	assert.False(t, lv.Games()[0].Favorite)
}

func TestLibraryViewHideRequiresConfirmation(t *testing.T) {
	lib := &fakeLibrary{games: sampleGames()}
	lv := newTestLibraryView(t, lib, nil)

	_, cmd := lv.Update(keyMsg("x"))
	assert.Nil(t, cmd)
	assert.Contains(t, lv.View(), "Hide Celeste?")

	_, cmd = lv.Update(keyMsg("n"))
	assert.Nil(t, cmd)
	assert.Len(t, lib.games, 3)

	lv.Update(keyMsg("x"))
	_, cmd = lv.Update(keyMsg("y"))
	require.NotNil(t, cmd)

	msgs := runCmd(t, cmd)
	require.Len(t, msgs, 1)
	done, ok := msgs[0].(IgnoreCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, library.OutcomeSaved, done.Result.Entry)

	reload := lv.HandleMsg(done)
	require.NotNil(t, reload)
	for _, msg := range runCmd(t, reload) {
		lv.HandleMsg(msg)
	}
	assert.Len(t, lv.Games(), 2)
	assert.Contains(t, lv.View(), "Celeste hidden")
	require.Len(t, lib.hidden, 1)
	assert.Equal(t, "steam:504230", lib.hidden[0].GetUniqueID())
}

func TestLibraryViewHideStatus(t *testing.T) {
	assert.Equal(t, "Braid hidden", hideStatus("Braid", library.IgnoreResult{Entry: library.OutcomeSaved}))
	assert.Equal(t, "Braid was already hidden", hideStatus("Braid", library.IgnoreResult{Entry: library.OutcomeAlreadyIgnored}))
	assert.Contains(t, hideStatus("Braid", library.IgnoreResult{Entry: library.OutcomeFailed}), "may return")
}

func TestLibraryViewRescan(t *testing.T) {
	lib := &fakeLibrary{games: sampleGames()[:1]}
	calls := 0
	rescanner := RescanFunc(func() (scan.IngestResult, error) {
		calls++
		lib.games = sampleGames()
		return scan.IngestResult{Added: 2}, nil
	})
	lv := newTestLibraryView(t, lib, rescanner)

	_, cmd := lv.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	assert.True(t, lv.IsScanning())
	assert.Nil(t, lv.StartRescan(), "only one scan at a time")

	var complete tea.Msg
	for _, msg := range runCmd(t, cmd) {
		if _, ok := msg.(RescanCompleteMsg); ok {
			complete = msg
		}
	}
	require.NotNil(t, complete)
	assert.Equal(t, 1, calls)

	reload := lv.HandleMsg(complete)
	assert.False(t, lv.IsScanning())
	for _, msg := range runCmd(t, reload) {
		lv.HandleMsg(msg)
	}
	assert.Len(t, lv.Games(), 3)
	assert.Contains(t, lv.View(), "2 new")
}

func TestLibraryViewRescanDisabledWithoutScanner(t *testing.T) {
	lv := newTestLibraryView(t, &fakeLibrary{}, nil)
	_, cmd := lv.Update(keyMsg("r"))
	assert.Nil(t, cmd)
	assert.False(t, lv.IsScanning())
}

func TestLibraryViewActions(t *testing.T) {
	lv := newTestLibraryView(t, &fakeLibrary{}, nil)

	action, _ := lv.Update(keyMsg("s"))
	assert.Equal(t, LibraryActionSettings, action)
	action, _ = lv.Update(keyMsg("?"))
	assert.Equal(t, LibraryActionHelp, action)
	action, _ = lv.Update(keyMsg("q"))
	assert.Equal(t, LibraryActionQuit, action)
}
