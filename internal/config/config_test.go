package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/nexus/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.BaseDir)
	assert.Empty(t, cfg.DBPath)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 60, cfg.Metadata.RequestsPerMinute)
}

func TestGetPaths_DefaultDatabase(t *testing.T) {
	cfg := &Config{BaseDir: "/data/nexus"}

	paths := GetPaths(cfg)

	assert.Equal(t, filepath.Join("/data/nexus", "nexus.db"), paths.Database)
	assert.Equal(t, filepath.Join("/data/nexus", "config.yaml"), paths.Config)
}

func TestGetPaths_DatabaseOverride(t *testing.T) {
	cfg := &Config{BaseDir: "/data/nexus", DBPath: "/tmp/other.db"}

	assert.Equal(t, "/tmp/other.db", GetPaths(cfg).Database)
}

func TestLoad_EnvOverrides(t *testing.T) {
	home := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "sub", "games.db")
	t.Setenv(EnvHome, home)
	t.Setenv(EnvDBPath, dbPath)
	t.Setenv(EnvDebug, "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, home, cfg.BaseDir)
	assert.Equal(t, dbPath, GetPaths(cfg).Database)
	assert.True(t, cfg.Debug)

	// The database directory is created up front.
	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvDebug, "")

	content := `
debug: true
libraries:
  - path: /games/steamapps/common
    platform: STEAM
  - path: /games/misc
metadata:
  requests_per_minute: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	require.Len(t, cfg.Libraries, 2)
	assert.Equal(t, models.PlatformSteam, cfg.Libraries[0].Platform)
	assert.Equal(t, models.PlatformLocal, cfg.Libraries[1].Platform)
	assert.Equal(t, 10, cfg.Metadata.RequestsPerMinute)
	// Unset keys keep their defaults.
	assert.Equal(t, "/assets/covers/placeholder.png", cfg.Metadata.PlaceholderCover)
}

func TestLoad_InvalidPlatform(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	content := "libraries:\n  - path: /games\n    platform: N64\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("libraries: [\n"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	cfg := &Config{
		BaseDir:   t.TempDir(),
		Libraries: []LibraryDir{{Path: "/games", Platform: models.PlatformGOG}},
		Metadata:  MetadataConfig{RequestsPerMinute: 5},
	}
	require.NoError(t, cfg.Save())

	loaded := &Config{BaseDir: cfg.BaseDir}
	require.NoError(t, loaded.readFile(GetPaths(cfg).Config))

	assert.Equal(t, cfg.Libraries, loaded.Libraries)
	assert.Equal(t, 5, loaded.Metadata.RequestsPerMinute)
}
