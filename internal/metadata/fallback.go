package metadata

import (
	"fmt"

	"github.com/asteroid-belt/nexus/internal/models"
)

// Fallback fills empty fields with placeholders so the library always has
// something to render.
type Fallback struct {
	// Cover is the placeholder artwork path.
	Cover string
}

// NewFallback creates a fallback provider. An empty cover uses the bundled
// placeholder.
func NewFallback(cover string) *Fallback {
	if cover == "" {
		cover = PlaceholderCoverPrefix + "covers/placeholder.png"
	}
	return &Fallback{Cover: cover}
}

// ApplyMetadata sets placeholder cover and description where empty.
func (f *Fallback) ApplyMetadata(game *models.Game) {
	if game.CoverImageURL == "" {
		game.CoverImageURL = f.Cover
	}
	if game.Description == "" {
		game.Description = fmt.Sprintf("%s available for %s.", PlaceholderDescriptionPrefix, game.Title)
	}
}
