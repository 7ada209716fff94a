// Package models defines the core data structures for Nexus.
package models

import (
	"strings"
	"time"
)

// Platform identifies the launcher or storefront that owns a game.
type Platform string

const (
	PlatformSteam   Platform = "STEAM"
	PlatformEpic    Platform = "EPIC"
	PlatformGOG     Platform = "GOG"
	PlatformXbox    Platform = "XBOX"
	PlatformEA      Platform = "EA"
	PlatformUbisoft Platform = "UBISOFT"
	PlatformLocal   Platform = "LOCAL"
	// PlatformManual marks games the user entered by hand. They survive a
	// library clear.
	PlatformManual Platform = "MANUAL"
)

// AllPlatforms returns every known platform in display order.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformSteam,
		PlatformEpic,
		PlatformGOG,
		PlatformXbox,
		PlatformEA,
		PlatformUbisoft,
		PlatformLocal,
		PlatformManual,
	}
}

// IsValid reports whether p is one of the known platforms.
func (p Platform) IsValid() bool {
	for _, known := range AllPlatforms() {
		if p == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human readable platform label.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSteam:
		return "Steam"
	case PlatformEpic:
		return "Epic Games"
	case PlatformGOG:
		return "GOG"
	case PlatformXbox:
		return "Xbox"
	case PlatformEA:
		return "EA App"
	case PlatformUbisoft:
		return "Ubisoft Connect"
	case PlatformLocal:
		return "Local"
	case PlatformManual:
		return "Manually Added"
	default:
		return string(p)
	}
}

// Game represents one discovered or manually added title.
type Game struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// UniqueID is assigned by the owning launcher (e.g. "steam:570").
	// Nil for manual entries. Duplicates are tolerated in storage and
	// collapsed by the library service.
	UniqueID *string `gorm:"size:255;index" json:"unique_id,omitempty"`

	Title       string   `gorm:"size:255;not null;index" json:"title"`
	Platform    Platform `gorm:"size:20;not null;index" json:"platform"`
	InstallPath string   `gorm:"size:1000" json:"install_path"`
	Executable  string   `gorm:"size:1000" json:"executable"`
	Favorite    bool     `gorm:"default:false;index" json:"favorite"`

	// Display metadata, filled by the metadata provider.
	CoverImageURL string `gorm:"size:1000" json:"cover_image_url"`
	Description   string `gorm:"type:text" json:"description"`
	Developer     string `gorm:"size:255" json:"developer"`
	ReleaseDate   string `gorm:"size:32" json:"release_date"`

	LastPlayedAt *time.Time `json:"last_played_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Game) TableName() string {
	return "games"
}

// GetUniqueID returns the external id, or "" when the game has none.
func (g *Game) GetUniqueID() string {
	if g.UniqueID == nil {
		return ""
	}
	return *g.UniqueID
}

// DedupKey returns the key used to collapse duplicate library rows: the
// external id when present, else lowercase(title + "_" + platform).
// It is never persisted.
func (g *Game) DedupKey() string {
	if uid := g.GetUniqueID(); uid != "" {
		return uid
	}
	return strings.ToLower(g.Title + "_" + string(g.Platform))
}

// IsManual reports whether the game was entered by hand.
func (g *Game) IsManual() bool {
	return g.Platform == PlatformManual
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
