package db

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/nexus/internal/models"
)

// IgnoredGameStore persists the games the user chose to hide.
// Each call runs in its own statement or transaction; no session is held
// between calls.
type IgnoredGameStore struct {
	db *DB
}

// NewIgnoredGameStore creates an ignored-game store on top of database.
func NewIgnoredGameStore(database *DB) *IgnoredGameStore {
	return database.IgnoredGames()
}

// Save inserts an entry without an ID, otherwise upserts it by ID.
// Storage errors are returned as-is after rollback; a second entry with the
// same natural key fails with gorm.ErrDuplicatedKey.
func (s *IgnoredGameStore) Save(entry *models.IgnoredGame) (*models.IgnoredGame, error) {
	err := s.db.Transaction(func(tx *DB) error {
		if entry.ID == 0 {
			return tx.Create(entry).Error
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "install_path", "unique_id"}),
		}).Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindByID retrieves an entry by ID. Returns nil if not found.
func (s *IgnoredGameStore) FindByID(id uint) (*models.IgnoredGame, error) {
	return s.findOne("id = ?", id)
}

// FindByUniqueID retrieves the entry for an external id. Returns nil if
// not found and ErrAmbiguous if several rows match.
func (s *IgnoredGameStore) FindByUniqueID(uniqueID string) (*models.IgnoredGame, error) {
	return s.findOne("unique_id = ?", uniqueID)
}

// FindByInstallPath retrieves the entry for an install path. Returns nil if
// not found and ErrAmbiguous if several rows match.
func (s *IgnoredGameStore) FindByInstallPath(installPath string) (*models.IgnoredGame, error) {
	return s.findOne("install_path = ?", installPath)
}

// findOne loads at most two rows so duplicates are reported, not hidden.
func (s *IgnoredGameStore) findOne(query string, arg any) (*models.IgnoredGame, error) {
	var entries []models.IgnoredGame
	if err := s.db.Where(query, arg).Order("id ASC").Limit(2).Find(&entries).Error; err != nil {
		return nil, err
	}
	switch len(entries) {
	case 0:
		return nil, nil
	case 1:
		return &entries[0], nil
	default:
		return nil, fmt.Errorf("ignored game where %s: %w", query, ErrAmbiguous)
	}
}

// FindAll returns every ignored entry ordered by title.
func (s *IgnoredGameStore) FindAll() ([]models.IgnoredGame, error) {
	var entries []models.IgnoredGame
	err := s.db.Order("title ASC").Order("id ASC").Find(&entries).Error
	return entries, err
}

// IsIgnored reports whether an entry exists for the external id.
func (s *IgnoredGameStore) IsIgnored(uniqueID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.IgnoredGame{}).Where("unique_id = ?", uniqueID).Count(&count).Error
	return count > 0, err
}

// FindAllUniqueIDs returns the set of ignored external ids for O(1) lookup
// by the scanner.
func (s *IgnoredGameStore) FindAllUniqueIDs() (map[string]struct{}, error) {
	var ids []string
	if err := s.db.Model(&models.IgnoredGame{}).
		Where("unique_id IS NOT NULL").
		Pluck("unique_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// Delete removes an entry by ID. Deleting a missing ID is a no-op.
func (s *IgnoredGameStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *DB) error {
		return tx.Delete(&models.IgnoredGame{}, "id = ?", id).Error
	})
}

// DeleteEntry removes entry. A nil entry or one without an ID is a no-op.
func (s *IgnoredGameStore) DeleteEntry(entry *models.IgnoredGame) error {
	if entry == nil || entry.ID == 0 {
		return nil
	}
	return s.Delete(entry.ID)
}

// DeleteByUniqueID removes the entry for an external id, if any.
func (s *IgnoredGameStore) DeleteByUniqueID(uniqueID string) error {
	return s.db.Transaction(func(tx *DB) error {
		return tx.Delete(&models.IgnoredGame{}, "unique_id = ?", uniqueID).Error
	})
}

// Count returns the number of ignored entries.
func (s *IgnoredGameStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.IgnoredGame{}).Count(&count).Error
	return count, err
}
