package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_DedupKey(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want string
	}{
		{
			name: "unique id wins",
			game: Game{UniqueID: StringPtr("steam:10"), Title: "A", Platform: PlatformSteam},
			want: "steam:10",
		},
		{
			name: "empty unique id falls back to title and platform",
			game: Game{UniqueID: StringPtr(""), Title: "Foo", Platform: PlatformLocal},
			want: "foo_local",
		},
		{
			name: "nil unique id falls back to title and platform",
			game: Game{Title: "Half-Life", Platform: PlatformManual},
			want: "half-life_manual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.game.DedupKey())
		})
	}
}

func TestGame_DedupKeyIsCaseInsensitive(t *testing.T) {
	a := Game{Title: "Foo", Platform: PlatformSteam}
	b := Game{Title: "foo", Platform: PlatformSteam}
	assert.Equal(t, a.DedupKey(), b.DedupKey())
}

func TestPlatform_IsValid(t *testing.T) {
	for _, p := range AllPlatforms() {
		assert.True(t, p.IsValid(), p)
		assert.NotEmpty(t, p.DisplayName())
	}
	assert.False(t, Platform("N64").IsValid())
}

func TestNewIgnoredGame_Snapshot(t *testing.T) {
	g := &Game{ID: 5, UniqueID: StringPtr("steam:20"), Title: "B", InstallPath: "/games/B"}

	ig := NewIgnoredGame(g)

	assert.Zero(t, ig.ID)
	assert.Equal(t, "B", ig.Title)
	assert.Equal(t, "/games/B", ig.GetInstallPath())
	assert.Equal(t, "steam:20", ig.GetUniqueID())
}

func TestNewIgnoredGame_EmptyFieldsBecomeNull(t *testing.T) {
	ig := NewIgnoredGame(&Game{Title: "Manual Thing"})

	assert.Nil(t, ig.InstallPath)
	assert.Nil(t, ig.UniqueID)
}

func TestSettingColumn(t *testing.T) {
	col, ok := SettingColumn(SettingDarkMode)
	assert.True(t, ok)
	assert.Equal(t, "dark_mode", col)

	_, ok = SettingColumn("volume")
	assert.False(t, ok)
}
