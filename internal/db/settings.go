package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/asteroid-belt/nexus/internal/models"
)

// SettingsStore persists application preferences in a single row.
type SettingsStore struct {
	db *DB
}

// GetSettings retrieves the stored settings, falling back to defaults when
// the row is missing.
func (s *SettingsStore) GetSettings() (*models.AppSettings, error) {
	var settings models.AppSettings
	err := s.db.Where("id = ?", models.DefaultSettingsID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultAppSettings(), nil
		}
		return nil, err
	}
	return &settings, nil
}

// UpdateSetting writes a single named boolean setting.
func (s *SettingsStore) UpdateSetting(name string, value bool) error {
	column, ok := models.SettingColumn(name)
	if !ok {
		return fmt.Errorf("unknown setting %q", name)
	}

	return s.db.Transaction(func(tx *DB) error {
		result := tx.Model(&models.AppSettings{}).
			Where("id = ?", models.DefaultSettingsID).
			Update(column, value)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		// Row was never seeded; create it with the requested value.
		settings := models.DefaultAppSettings()
		if err := tx.Create(settings).Error; err != nil {
			return err
		}
		return tx.Model(settings).Update(column, value).Error
	})
}
