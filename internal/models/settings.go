package models

import "time"

// Setting names accepted by the settings store.
const (
	SettingLaunchOnStartup = "launchOnStartup"
	SettingCloseToTray     = "closeToTray"
	SettingDarkMode        = "darkMode"
)

// AppSettings holds the persisted application preferences.
// There is exactly one row, keyed "default".
type AppSettings struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	LaunchOnStartup bool      `gorm:"default:false" json:"launch_on_startup"`
	CloseToTray     bool      `gorm:"default:false" json:"close_to_tray"`
	DarkMode        bool      `json:"dark_mode"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (AppSettings) TableName() string {
	return "app_settings"
}

// DefaultSettingsID is the primary key of the single settings row.
const DefaultSettingsID = "default"

// DefaultAppSettings returns the settings used when nothing is stored.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		ID:              DefaultSettingsID,
		LaunchOnStartup: false,
		CloseToTray:     false,
		DarkMode:        true,
	}
}

// SettingColumn maps a setting name to its column. ok is false for
// unknown names.
func SettingColumn(name string) (column string, ok bool) {
	switch name {
	case SettingLaunchOnStartup:
		return "launch_on_startup", true
	case SettingCloseToTray:
		return "close_to_tray", true
	case SettingDarkMode:
		return "dark_mode", true
	}
	return "", false
}
