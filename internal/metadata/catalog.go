package metadata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/asteroid-belt/nexus/internal/models"
)

// Entry is the metadata known for one title.
type Entry struct {
	UniqueID    string `yaml:"unique_id"`
	Title       string `yaml:"title"`
	Cover       string `yaml:"cover"`
	Description string `yaml:"description"`
	Developer   string `yaml:"developer"`
	ReleaseDate string `yaml:"release_date"`
}

// Catalog is an offline metadata source loaded from a YAML file.
// Entries are matched by external id first, then by case-insensitive title.
// A catalog is read-only after construction.
type Catalog struct {
	byID    map[string]Entry
	byTitle map[string]Entry
}

// NewCatalog creates a catalog from entries.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		byID:    make(map[string]Entry),
		byTitle: make(map[string]Entry),
	}
	for _, e := range entries {
		if e.UniqueID != "" {
			c.byID[e.UniqueID] = e
		}
		if e.Title != "" {
			c.byTitle[strings.ToLower(e.Title)] = e
		}
	}
	return c
}

// LoadCatalog reads a catalog file. A missing file yields an empty catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewCatalog(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file struct {
		Games []Entry `yaml:"games"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return NewCatalog(file.Games), nil
}

// Len returns the number of entries indexed by title.
func (c *Catalog) Len() int {
	return len(c.byTitle)
}

// Lookup finds the entry for game.
func (c *Catalog) Lookup(game *models.Game) (Entry, bool) {
	if uid := game.GetUniqueID(); uid != "" {
		if e, ok := c.byID[uid]; ok {
			return e, true
		}
	}
	e, ok := c.byTitle[strings.ToLower(game.Title)]
	return e, ok
}

// Matches reports whether the catalog has an entry for game that would
// change it.
func (c *Catalog) Matches(game *models.Game) bool {
	e, ok := c.Lookup(game)
	if !ok {
		return false
	}
	return (e.Cover != "" && NeedsCover(game) && e.Cover != game.CoverImageURL) ||
		(e.Description != "" && NeedsDescription(game) && e.Description != game.Description) ||
		(e.Developer != "" && game.Developer == "") ||
		(e.ReleaseDate != "" && game.ReleaseDate == "")
}

// ApplyMetadata copies known fields over missing or placeholder values.
func (c *Catalog) ApplyMetadata(game *models.Game) {
	e, ok := c.Lookup(game)
	if !ok {
		return
	}
	if e.Cover != "" && NeedsCover(game) {
		game.CoverImageURL = e.Cover
	}
	if e.Description != "" && NeedsDescription(game) {
		game.Description = e.Description
	}
	if e.Developer != "" && game.Developer == "" {
		game.Developer = e.Developer
	}
	if e.ReleaseDate != "" && game.ReleaseDate == "" {
		game.ReleaseDate = e.ReleaseDate
	}
}
