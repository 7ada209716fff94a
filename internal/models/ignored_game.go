package models

import "time"

// IgnoredGame is a title the user chose to hide. Scans skip it until the
// user restores it.
//
// Uniqueness is by UniqueID when present, else by InstallPath. Both are
// enforced with storage-level unique indexes (see db.setupIndexes).
type IgnoredGame struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	InstallPath *string   `gorm:"size:1000" json:"install_path,omitempty"`
	UniqueID    *string   `gorm:"size:255;uniqueIndex:idx_ignored_games_unique_id" json:"unique_id,omitempty"`
	IgnoredAt   time.Time `gorm:"autoCreateTime" json:"ignored_at"`
}

// TableName specifies the table name for GORM.
func (IgnoredGame) TableName() string {
	return "ignored_games"
}

// NewIgnoredGame snapshots the identifying fields of a game.
func NewIgnoredGame(g *Game) *IgnoredGame {
	return &IgnoredGame{
		Title:       g.Title,
		InstallPath: StringPtr(g.InstallPath),
		UniqueID:    StringPtr(g.GetUniqueID()),
	}
}

// GetInstallPath returns the install path snapshot, or "" when absent.
func (ig *IgnoredGame) GetInstallPath() string {
	if ig.InstallPath == nil {
		return ""
	}
	return *ig.InstallPath
}

// GetUniqueID returns the external id snapshot, or "" when absent.
func (ig *IgnoredGame) GetUniqueID() string {
	if ig.UniqueID == nil {
		return ""
	}
	return *ig.UniqueID
}
