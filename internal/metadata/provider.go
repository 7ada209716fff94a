// Package metadata fills display metadata (cover art, description,
// developer, release date) on games.
package metadata

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/asteroid-belt/nexus/internal/models"
)

const (
	// PlaceholderCoverPrefix marks bundled placeholder artwork.
	PlaceholderCoverPrefix = "/assets/"
	// PlaceholderDescriptionPrefix starts every generated description.
	PlaceholderDescriptionPrefix = "No description"
)

// Provider mutates a game's display metadata in place.
// Providers never fail; a provider that knows nothing leaves the game as is.
type Provider interface {
	ApplyMetadata(game *models.Game)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(game *models.Game)

// ApplyMetadata calls f(game).
func (f ProviderFunc) ApplyMetadata(game *models.Game) {
	f(game)
}

// NeedsCover reports whether the cover is missing or a placeholder.
func NeedsCover(game *models.Game) bool {
	return game.CoverImageURL == "" || strings.HasPrefix(game.CoverImageURL, PlaceholderCoverPrefix)
}

// NeedsDescription reports whether the description is missing or generated.
func NeedsDescription(game *models.Game) bool {
	return game.Description == "" || strings.HasPrefix(game.Description, PlaceholderDescriptionPrefix)
}

// Matcher is implemented by providers that can tell up front whether they
// know anything about a game.
type Matcher interface {
	Matches(game *models.Game) bool
}

// Chain applies providers in order on the same game. Each provider decides
// for itself which fields to overwrite.
type Chain []Provider

// ApplyMetadata runs every provider in the chain.
func (c Chain) ApplyMetadata(game *models.Game) {
	for _, p := range c {
		p.ApplyMetadata(game)
	}
}

// Throttled limits how often the wrapped provider is called. When the
// wrapped provider is a Matcher, games it does not match skip both the
// limiter and the call.
type Throttled struct {
	next    Provider
	limiter *rate.Limiter
}

// NewThrottled wraps next so it runs at most perMinute times a minute.
// A non-positive perMinute disables throttling.
func NewThrottled(next Provider, perMinute int) *Throttled {
	limit := rate.Inf
	burst := 1
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
		burst = perMinute
	}
	return &Throttled{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// ApplyMetadata waits for a token, then calls the wrapped provider.
// Backfill has no cancellation, so the wait is unbounded.
func (t *Throttled) ApplyMetadata(game *models.Game) {
	if m, ok := t.next.(Matcher); ok && !m.Matches(game) {
		return
	}
	if err := t.limiter.Wait(context.Background()); err != nil {
		return
	}
	t.next.ApplyMetadata(game)
}
