// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/asteroid-belt/nexus/internal/models"
)

// Environment variables read by Load.
const (
	EnvHome   = "NEXUS_HOME"
	EnvDBPath = "NEXUS_DB_PATH"
	EnvDebug  = "NEXUS_DEBUG"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all Nexus data (<xdg data home>/nexus)
	BaseDir string `yaml:"-"`

	// DBPath overrides the database location when set.
	DBPath string `yaml:"database"`

	// Debug enables debug logging and SQL tracing.
	Debug bool `yaml:"debug"`

	// Libraries are the directories the scanner walks.
	Libraries []LibraryDir `yaml:"libraries"`

	// Metadata settings for backfilling covers and descriptions
	Metadata MetadataConfig `yaml:"metadata"`
}

// LibraryDir is a directory whose sub-directories are games.
type LibraryDir struct {
	Path     string          `yaml:"path"`
	Platform models.Platform `yaml:"platform"`
}

// MetadataConfig holds metadata provider settings.
type MetadataConfig struct {
	// RequestsPerMinute caps metadata lookups (0 = unlimited).
	RequestsPerMinute int `yaml:"requests_per_minute"`
	// PlaceholderCover is written when no artwork is known.
	PlaceholderCover string `yaml:"placeholder_cover"`
}

// Load builds the configuration from defaults, the optional config.yaml in
// the base directory and environment variables, in that order.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home := os.Getenv(EnvHome); home != "" {
		cfg.BaseDir = home
	}

	if err := cfg.readFile(GetPaths(cfg).Config); err != nil {
		return nil, err
	}

	if dbPath := os.Getenv(EnvDBPath); dbPath != "" {
		cfg.DBPath = dbPath
	}

	if debug := os.Getenv(EnvDebug); debug == "1" || debug == "true" {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readFile merges config.yaml into cfg. A missing file is not an error.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks library entries and fills in missing platforms.
func (c *Config) Validate() error {
	for i := range c.Libraries {
		lib := &c.Libraries[i]
		if lib.Path == "" {
			return fmt.Errorf("invalid config: libraries[%d] has no path", i)
		}
		if lib.Platform == "" {
			lib.Platform = models.PlatformLocal
		}
		if !lib.Platform.IsValid() {
			return fmt.Errorf("invalid config: libraries[%d] has unknown platform %q", i, lib.Platform)
		}
	}
	if c.Metadata.RequestsPerMinute < 0 {
		return fmt.Errorf("invalid config: metadata.requests_per_minute must be >= 0")
	}
	return nil
}

// Save writes the file-backed part of the configuration to config.yaml.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(GetPaths(c).Config, data, 0644)
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.BaseDir,
		filepath.Dir(GetPaths(cfg).Database),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
