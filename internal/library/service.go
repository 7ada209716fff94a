// Package library orchestrates reads and writes across the game and
// ignored-game stores: deduplication on load, metadata backfill, the
// ignore/restore workflow, favorites and bulk clear.
package library

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/asteroid-belt/nexus/internal/metadata"
	"github.com/asteroid-belt/nexus/internal/models"
)

// GameStore is the subset of db.GameStore the service needs.
type GameStore interface {
	FindAll() ([]models.Game, error)
	FindByID(id uint) (*models.Game, error)
	FindByUniqueID(uniqueID string) (*models.Game, error)
	FindByFavorite(favorite bool) ([]models.Game, error)
	FindByPlatform(platform models.Platform) ([]models.Game, error)
	SearchByTitle(query string) ([]models.Game, error)
	Save(game *models.Game) (*models.Game, error)
	Delete(id uint) error
	DeleteByUniqueID(uniqueID string) (int64, error)
	DeleteExceptPlatform(keep models.Platform) (int64, error)
	Count() (int64, error)
}

// IgnoredGameStore is the subset of db.IgnoredGameStore the service needs.
type IgnoredGameStore interface {
	Save(entry *models.IgnoredGame) (*models.IgnoredGame, error)
	FindAll() ([]models.IgnoredGame, error)
	IsIgnored(uniqueID string) (bool, error)
	FindAllUniqueIDs() (map[string]struct{}, error)
	Delete(id uint) error
}

// Outcome classifies a best-effort write whose failure does not abort the
// surrounding operation.
type Outcome int

const (
	// OutcomeSkipped means the write was not attempted.
	OutcomeSkipped Outcome = iota
	// OutcomeSaved means the write succeeded.
	OutcomeSaved
	// OutcomeAlreadyIgnored means an entry with the same key exists.
	OutcomeAlreadyIgnored
	// OutcomeFailed means the write failed for another reason.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSaved:
		return "saved"
	case OutcomeAlreadyIgnored:
		return "already_ignored"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// classify maps a store error to an Outcome.
func classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSaved
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return OutcomeAlreadyIgnored
	default:
		return OutcomeFailed
	}
}

// IgnoreResult reports what IgnoreGame did.
type IgnoreResult struct {
	// Entry is the outcome of recording the ignored entry.
	Entry Outcome
	// Err is the error behind OutcomeAlreadyIgnored or OutcomeFailed.
	Err error
	// Removed is true when the game row was deleted.
	Removed bool
}

// Service is the library's orchestration layer. Construct one with New at
// process start and share it; it holds no per-call state.
type Service struct {
	games    GameStore
	ignored  IgnoredGameStore
	metadata metadata.Provider
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for swallowed failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a library service. A nil provider disables backfill.
func New(games GameStore, ignored IgnoredGameStore, provider metadata.Provider, opts ...Option) *Service {
	if provider == nil {
		provider = metadata.ProviderFunc(func(*models.Game) {})
	}
	s := &Service{
		games:    games,
		ignored:  ignored,
		metadata: provider,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAllGames returns every game once, in first-seen storage order.
//
// Rows sharing a dedup key (see models.Game.DedupKey) after the first are
// deleted from storage once the pass is over. Deletion failures are logged
// and do not fail the listing.
func (s *Service) GetAllGames() ([]models.Game, error) {
	games, err := s.games.FindAll()
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(games))
	kept := make(map[string]*models.Game, len(games))
	var duplicateIDs []uint

	for i := range games {
		game := &games[i]
		key := game.DedupKey()
		if _, seen := kept[key]; seen {
			duplicateIDs = append(duplicateIDs, game.ID)
			continue
		}
		kept[key] = game
		order = append(order, key)
		s.ensureMetadata(game)
	}

	for _, id := range duplicateIDs {
		if err := s.games.Delete(id); err != nil {
			s.logger.Warn("remove duplicate game", zap.Uint("id", id), zap.Error(err))
			continue
		}
		s.logger.Info("removed duplicate game", zap.Uint("id", id))
	}

	result := make([]models.Game, 0, len(order))
	for _, key := range order {
		result = append(result, *kept[key])
	}
	return result, nil
}

// GetFavoriteGames returns favorite games with metadata backfilled.
func (s *Service) GetFavoriteGames() ([]models.Game, error) {
	return s.backfillAll(s.games.FindByFavorite(true))
}

// SearchGames returns games whose title contains query. A blank query
// lists the whole (deduplicated) library.
func (s *Service) SearchGames(query string) ([]models.Game, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAllGames()
	}
	return s.backfillAll(s.games.SearchByTitle(query))
}

// GetGamesByPlatform returns games owned by platform.
func (s *Service) GetGamesByPlatform(platform models.Platform) ([]models.Game, error) {
	return s.backfillAll(s.games.FindByPlatform(platform))
}

func (s *Service) backfillAll(games []models.Game, err error) ([]models.Game, error) {
	if err != nil {
		return nil, err
	}
	for i := range games {
		s.ensureMetadata(&games[i])
	}
	return games, nil
}

// GetGameByID returns the game or nil when absent.
func (s *Service) GetGameByID(id uint) (*models.Game, error) {
	game, err := s.games.FindByID(id)
	if err != nil || game == nil {
		return nil, err
	}
	s.ensureMetadata(game)
	return game, nil
}

// GetGameByUniqueID returns the game or nil when absent.
func (s *Service) GetGameByUniqueID(uniqueID string) (*models.Game, error) {
	game, err := s.games.FindByUniqueID(uniqueID)
	if err != nil || game == nil {
		return nil, err
	}
	s.ensureMetadata(game)
	return game, nil
}

// SaveGame inserts or updates a game.
func (s *Service) SaveGame(game *models.Game) (*models.Game, error) {
	return s.games.Save(game)
}

// ToggleFavorite flips the favorite flag and persists the game.
func (s *Service) ToggleFavorite(game *models.Game) error {
	game.Favorite = !game.Favorite
	_, err := s.games.Save(game)
	return err
}

// DeleteGame removes a game. Nil games and unsaved games are ignored.
func (s *Service) DeleteGame(game *models.Game) error {
	if game == nil || game.ID == 0 {
		return nil
	}
	return s.games.Delete(game.ID)
}

// GetGameCount returns the number of stored games.
func (s *Service) GetGameCount() (int64, error) {
	return s.games.Count()
}

// ensureMetadata fetches missing cover art and description and persists
// the game when the fetch changed it. The cover and description checks
// are independent, so a game missing both is fetched twice. Unsaved games
// are not written back, and write failures are only logged.
func (s *Service) ensureMetadata(game *models.Game) {
	if game == nil {
		return
	}

	before := metadataFields(game)
	needsUpdate := false

	if metadata.NeedsCover(game) {
		s.metadata.ApplyMetadata(game)
		needsUpdate = true
	}

	if metadata.NeedsDescription(game) {
		s.metadata.ApplyMetadata(game)
		needsUpdate = true
	}

	if !needsUpdate || game.ID == 0 || metadataFields(game) == before {
		return
	}
	if _, err := s.games.Save(game); err != nil {
		s.logger.Warn("persist backfilled metadata",
			zap.Uint("id", game.ID),
			zap.String("title", game.Title),
			zap.Error(err))
	}
}

// displayMetadata is the part of a game a metadata provider may change.
type displayMetadata struct {
	cover, description, developer, releaseDate string
}

func metadataFields(game *models.Game) displayMetadata {
	return displayMetadata{
		cover:       game.CoverImageURL,
		description: game.Description,
		developer:   game.Developer,
		releaseDate: game.ReleaseDate,
	}
}

// ClearAllGames removes every game except manually added ones. It returns
// the number of games removed.
func (s *Service) ClearAllGames() (int64, error) {
	removed, err := s.games.DeleteExceptPlatform(models.PlatformManual)
	if err != nil {
		return 0, err
	}
	s.logger.Info("library cleared", zap.Int64("removed", removed))
	return removed, nil
}

// IgnoreGame hides game: it records an ignored entry so future scans skip
// it, then deletes the game row along with any other row sharing its
// unique id.
//
// Recording is best effort. A failure (typically the game was already
// ignored) is reported in the result and the game is removed anyway. The
// two writes are separate transactions; a crash between them leaves the
// entry recorded and the game still listed.
func (s *Service) IgnoreGame(game *models.Game) (IgnoreResult, error) {
	var result IgnoreResult
	if game == nil {
		return result, nil
	}

	_, err := s.ignored.Save(models.NewIgnoredGame(game))
	result.Entry = classify(err)
	result.Err = err
	switch result.Entry {
	case OutcomeSaved:
		s.logger.Info("game ignored", zap.String("title", game.Title), zap.String("unique_id", game.GetUniqueID()))
	case OutcomeAlreadyIgnored:
		s.logger.Info("game already ignored", zap.String("title", game.Title), zap.String("unique_id", game.GetUniqueID()))
	default:
		s.logger.Warn("save ignored game", zap.String("title", game.Title), zap.Error(err))
	}

	if game.ID == 0 {
		return result, nil
	}
	if err := s.games.Delete(game.ID); err != nil {
		return result, err
	}
	result.Removed = true
	s.logger.Info("game removed from library", zap.Uint("id", game.ID), zap.String("title", game.Title))

	if uid := game.GetUniqueID(); uid != "" {
		removed, err := s.games.DeleteByUniqueID(uid)
		if err != nil {
			return result, fmt.Errorf("remove copies of %s: %w", uid, err)
		}
		if removed > 0 {
			s.logger.Info("removed duplicate copies of ignored game", zap.String("unique_id", uid), zap.Int64("removed", removed))
		}
	}
	return result, nil
}

// RestoreIgnoredGame lifts the exclusion recorded by IgnoreGame. The game
// itself is not recreated; the next scan picks it up again.
func (s *Service) RestoreIgnoredGame(entry *models.IgnoredGame) error {
	if entry == nil || entry.ID == 0 {
		return nil
	}
	if err := s.ignored.Delete(entry.ID); err != nil {
		return err
	}
	s.logger.Info("game restored, eligible on next scan", zap.String("title", entry.Title))
	return nil
}

// GetAllIgnoredGames returns ignored entries ordered by title.
func (s *Service) GetAllIgnoredGames() ([]models.IgnoredGame, error) {
	return s.ignored.FindAll()
}

// IsGameIgnored reports whether an entry exists for the external id.
func (s *Service) IsGameIgnored(uniqueID string) (bool, error) {
	return s.ignored.IsIgnored(uniqueID)
}

// GetIgnoredGameIDs returns the set of ignored external ids.
func (s *Service) GetIgnoredGameIDs() (map[string]struct{}, error) {
	return s.ignored.FindAllUniqueIDs()
}
