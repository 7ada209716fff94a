package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/nexus/internal/models"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) *DB {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(Config{
		Path:        dbPath,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nexus.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	if db.Path() != dbPath {
		t.Errorf("Path() = %v, want %v", db.Path(), dbPath)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dirs", "nexus.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("nested directories were not created")
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nexus.db")

	first, err := New(DefaultConfig(dbPath))
	require.NoError(t, err)
	_, err = first.Games().Save(&models.Game{Title: "Portal", Platform: models.PlatformSteam})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(DefaultConfig(dbPath))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	count, err := second.Games().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetStats_EmptyDB(t *testing.T) {
	db := testDB(t)

	stats, err := db.GetStats()
	require.NoError(t, err)

	assert.Zero(t, stats.TotalGames)
	assert.Zero(t, stats.FavoriteGames)
	assert.Zero(t, stats.IgnoredGames)
	assert.Positive(t, stats.SizeBytes)
}

func TestGetStats_CountsRows(t *testing.T) {
	db := testDB(t)

	_, err := db.Games().Save(&models.Game{Title: "A", Platform: models.PlatformSteam, Favorite: true})
	require.NoError(t, err)
	_, err = db.Games().Save(&models.Game{Title: "B", Platform: models.PlatformGOG})
	require.NoError(t, err)
	_, err = db.IgnoredGames().Save(&models.IgnoredGame{Title: "C", UniqueID: models.StringPtr("gog:3")})
	require.NoError(t, err)

	stats, err := db.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalGames)
	assert.Equal(t, int64(1), stats.FavoriteGames)
	assert.Equal(t, int64(1), stats.IgnoredGames)
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := testDB(t)

	err := db.Transaction(func(tx *DB) error {
		if err := tx.Create(&models.Game{Title: "Doomed", Platform: models.PlatformLocal}).Error; err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	count, err := db.Games().Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
