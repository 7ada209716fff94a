package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/nexus/internal/models"
)

// gameColumns are the columns rewritten when an existing game is saved.
var gameColumns = []string{
	"unique_id", "title", "platform", "install_path", "executable",
	"favorite", "cover_image_url", "description", "developer",
	"release_date", "last_played_at", "updated_at",
}

// GameStore persists discovered and manually added games.
// Each call runs in its own statement or transaction.
type GameStore struct {
	db *DB
}

// NewGameStore creates a game store on top of database.
func NewGameStore(database *DB) *GameStore {
	return database.Games()
}

// FindAll returns every game in storage order.
func (s *GameStore) FindAll() ([]models.Game, error) {
	var games []models.Game
	err := s.db.Order("id ASC").Find(&games).Error
	return games, err
}

// FindByID retrieves a game by ID. Returns nil if not found.
func (s *GameStore) FindByID(id uint) (*models.Game, error) {
	var game models.Game
	err := s.db.First(&game, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// FindByUniqueID retrieves the oldest game with the given external id.
// Returns nil if not found.
func (s *GameStore) FindByUniqueID(uniqueID string) (*models.Game, error) {
	var game models.Game
	err := s.db.Where("unique_id = ?", uniqueID).Order("id ASC").First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// FindByFavorite returns games whose favorite flag equals favorite.
func (s *GameStore) FindByFavorite(favorite bool) ([]models.Game, error) {
	var games []models.Game
	err := s.db.Where("favorite = ?", favorite).Order("title ASC").Find(&games).Error
	return games, err
}

// FindByPlatform returns games owned by platform.
func (s *GameStore) FindByPlatform(platform models.Platform) ([]models.Game, error) {
	var games []models.Game
	err := s.db.Where("platform = ?", platform).Order("title ASC").Find(&games).Error
	return games, err
}

// SearchByTitle returns games whose title contains query, ignoring case.
func (s *GameStore) SearchByTitle(query string) ([]models.Game, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	var games []models.Game
	err := s.db.Where("LOWER(title) LIKE ? ESCAPE '\\'", pattern).
		Order("title ASC").
		Find(&games).Error
	return games, err
}

// Save inserts a game without an ID, otherwise upserts it by ID.
// The assigned ID is written back into game.
func (s *GameStore) Save(game *models.Game) (*models.Game, error) {
	err := s.db.Transaction(func(tx *DB) error {
		if game.ID == 0 {
			return tx.Create(game).Error
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(gameColumns),
		}).Create(game).Error
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Delete removes a game by ID. Deleting a missing ID is a no-op.
func (s *GameStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *DB) error {
		return tx.Delete(&models.Game{}, "id = ?", id).Error
	})
}

// DeleteByUniqueID removes every game carrying uniqueID and returns the
// number of rows removed.
func (s *GameStore) DeleteByUniqueID(uniqueID string) (int64, error) {
	var removed int64
	err := s.db.Transaction(func(tx *DB) error {
		result := tx.Where("unique_id = ?", uniqueID).Delete(&models.Game{})
		removed = result.RowsAffected
		return result.Error
	})
	return removed, err
}

// DeleteExceptPlatform removes every game not owned by keep and returns
// the number of rows removed.
func (s *GameStore) DeleteExceptPlatform(keep models.Platform) (int64, error) {
	var removed int64
	err := s.db.Transaction(func(tx *DB) error {
		result := tx.Where("platform <> ?", keep).Delete(&models.Game{})
		removed = result.RowsAffected
		return result.Error
	})
	return removed, err
}

// Count returns the number of games.
func (s *GameStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Game{}).Count(&count).Error
	return count, err
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
