package scan

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/asteroid-belt/nexus/internal/models"
)

// Library is the part of library.Service the ingester writes through.
type Library interface {
	GetIgnoredGameIDs() (map[string]struct{}, error)
	GetGameByUniqueID(uniqueID string) (*models.Game, error)
	SaveGame(game *models.Game) (*models.Game, error)
}

// IngestResult counts what Ingest did with the candidates.
type IngestResult struct {
	Added   int
	Ignored int
	Known   int
	Failed  int
}

// Ingester adds scanned candidates to the library.
type Ingester struct {
	library Library
	logger  *zap.Logger
}

// NewIngester creates an ingester. A nil logger discards output.
func NewIngester(library Library, logger *zap.Logger) *Ingester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingester{library: library, logger: logger}
}

// Ingest saves every candidate whose unique id is neither ignored nor
// already in the library. Candidates without a unique id are always added.
// A failed save is counted and logged; the remaining candidates are still
// processed.
func (i *Ingester) Ingest(candidates []models.Game) (IngestResult, error) {
	var result IngestResult

	ignored, err := i.library.GetIgnoredGameIDs()
	if err != nil {
		return result, fmt.Errorf("load ignored ids: %w", err)
	}

	for idx := range candidates {
		game := candidates[idx]
		if uid := game.GetUniqueID(); uid != "" {
			if _, skip := ignored[uid]; skip {
				result.Ignored++
				continue
			}
			existing, err := i.library.GetGameByUniqueID(uid)
			if err != nil {
				return result, fmt.Errorf("look up %s: %w", uid, err)
			}
			if existing != nil {
				result.Known++
				continue
			}
		}

		if _, err := i.library.SaveGame(&game); err != nil {
			result.Failed++
			i.logger.Warn("add scanned game", zap.String("title", game.Title), zap.Error(err))
			continue
		}
		result.Added++
	}

	i.logger.Info("scan ingested",
		zap.Int("added", result.Added),
		zap.Int("ignored", result.Ignored),
		zap.Int("known", result.Known),
		zap.Int("failed", result.Failed))
	return result, nil
}
