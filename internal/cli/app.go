package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/asteroid-belt/nexus/internal/config"
	"github.com/asteroid-belt/nexus/internal/db"
	"github.com/asteroid-belt/nexus/internal/library"
	"github.com/asteroid-belt/nexus/internal/log"
	"github.com/asteroid-belt/nexus/internal/metadata"
	"github.com/asteroid-belt/nexus/internal/scan"
)

// CatalogFile is the optional metadata catalog in the base directory.
const CatalogFile = "catalog.yaml"

// app holds the process-wide services shared by every command.
type app struct {
	cfg      *config.Config
	db       *db.DB
	library  *library.Service
	scanner  *scan.Scanner
	ingester *scan.Ingester
}

// openApp loads configuration, starts logging and opens the database.
// Callers must Close the returned app.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}
	if debugFlag {
		cfg.Debug = true
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.Logs, cfg.Debug); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	logger := log.L()

	dbCfg := db.DefaultConfig(paths.Database)
	dbCfg.Debug = cfg.Debug
	database, err := db.New(dbCfg)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	catalog, err := metadata.LoadCatalog(filepath.Join(cfg.BaseDir, CatalogFile))
	if err != nil {
		// Placeholders still apply without a catalog.
		log.Errorf("load metadata catalog: %v", err)
		catalog = metadata.NewCatalog(nil)
	}
	provider := newMetadataProvider(catalog, cfg.Metadata)

	svc := library.New(database.Games(), database.IgnoredGames(), provider, library.WithLogger(logger))

	log.Printf("database: %s, libraries: %d, catalog entries: %d",
		database.Path(), len(cfg.Libraries), catalog.Len())

	return &app{
		cfg:      cfg,
		db:       database,
		library:  svc,
		scanner:  scan.NewScanner(logger),
		ingester: scan.NewIngester(svc, logger),
	}, nil
}

// newMetadataProvider throttles catalog lookups only; placeholders are
// local and always applied.
func newMetadataProvider(catalog *metadata.Catalog, cfg config.MetadataConfig) metadata.Provider {
	return metadata.Chain{
		metadata.NewThrottled(catalog, cfg.RequestsPerMinute),
		metadata.NewFallback(cfg.PlaceholderCover),
	}
}

// rescan scans every configured library directory and ingests new games.
func (a *app) rescan() (scan.IngestResult, error) {
	return a.ingester.Ingest(a.scanner.ScanLibraries(a.cfg.Libraries))
}

// Close releases the database and the log file.
func (a *app) Close() error {
	return errors.Join(a.db.Close(), log.Close())
}
