package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database string // Main SQLite database
	Config   string // Config file
	Logs     string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(cfg.BaseDir, "nexus.db")
	}
	return Paths{
		Database: dbPath,
		Config:   filepath.Join(cfg.BaseDir, "config.yaml"),
		Logs:     cfg.BaseDir,
	}
}

// DefaultBaseDir returns the default base directory (<xdg data home>/nexus).
func DefaultBaseDir() string {
	if xdg.DataHome == "" {
		return ".nexus"
	}
	return filepath.Join(xdg.DataHome, "nexus")
}
