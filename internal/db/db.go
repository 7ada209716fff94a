// Package db provides a GORM-based database layer for Nexus.
// It uses the pure-Go SQLite driver, one file per table.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asteroid-belt/nexus/internal/models"
)

// ErrAmbiguous is returned by single-result lookups when more than one row
// matches a key that is supposed to be unique.
var ErrAmbiguous = errors.New("ambiguous result: more than one row matches")

// DB wraps the GORM database connection with Nexus-specific operations.
type DB struct {
	*gorm.DB
	path string
}

// Config holds database configuration options.
type Config struct {
	Path        string
	Debug       bool
	MaxIdleConn int
	MaxOpenConn int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	}
}

// New creates a new database connection and runs migrations.
func New(cfg Config) (*DB, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// DELETE journal mode: WAL has visibility issues with the pure-Go driver.
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
		// Unique-constraint failures surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	wrapped := &DB{DB: db, path: cfg.Path}

	if err := wrapped.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := wrapped.setupIndexes(); err != nil {
		return nil, fmt.Errorf("setup indexes: %w", err)
	}

	if err := wrapped.seedSettings(); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}

	return wrapped, nil
}

// migrate runs GORM auto-migrations for all models.
func (db *DB) migrate() error {
	return db.AutoMigrate(
		&models.Game{},
		&models.IgnoredGame{},
		&models.AppSettings{},
	)
}

// setupIndexes creates indexes GORM tags cannot express.
// An ignored entry without an external id is unique by install path.
func (db *DB) setupIndexes() error {
	indexSQL := `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_ignored_games_install_path
		ON ignored_games(install_path)
		WHERE unique_id IS NULL AND install_path IS NOT NULL;
	`
	if err := db.Exec(indexSQL).Error; err != nil {
		return fmt.Errorf("create install path index: %w", err)
	}
	return nil
}

// seedSettings inserts the default settings row if not present.
func (db *DB) seedSettings() error {
	defaults := models.DefaultAppSettings()
	return db.Where("id = ?", models.DefaultSettingsID).FirstOrCreate(defaults).Error
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction.
// If the callback returns an error, the transaction is rolled back.
func (d *DB) Transaction(fc func(tx *DB) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		wrappedTx := &DB{DB: tx, path: d.path}
		return fc(wrappedTx)
	})
}

// Games returns the game store backed by this database.
func (db *DB) Games() *GameStore {
	return &GameStore{db: db}
}

// IgnoredGames returns the ignored-game store backed by this database.
func (db *DB) IgnoredGames() *IgnoredGameStore {
	return &IgnoredGameStore{db: db}
}

// Settings returns the settings store backed by this database.
func (db *DB) Settings() *SettingsStore {
	return &SettingsStore{db: db}
}

// Stats provides aggregate library statistics.
type Stats struct {
	TotalGames    int64
	FavoriteGames int64
	IgnoredGames  int64
	SizeBytes     int64
	LastUpdated   time.Time
}

// GetStats returns aggregate statistics about the database.
func (db *DB) GetStats() (*Stats, error) {
	var stats Stats

	if err := db.Model(&models.Game{}).Count(&stats.TotalGames).Error; err != nil {
		return nil, fmt.Errorf("count games: %w", err)
	}

	if err := db.Model(&models.Game{}).Where("favorite = ?", true).Count(&stats.FavoriteGames).Error; err != nil {
		return nil, fmt.Errorf("count favorites: %w", err)
	}

	if err := db.Model(&models.IgnoredGame{}).Count(&stats.IgnoredGames).Error; err != nil {
		return nil, fmt.Errorf("count ignored games: %w", err)
	}

	if info, err := os.Stat(db.path); err == nil {
		stats.SizeBytes = info.Size()
	}

	stats.LastUpdated = time.Now()

	return &stats, nil
}
