package repositories

import (
	"strings"

	"campusnav/internal/models/domain_models"
)

// StaticCatalog is the curated, hand-authored table of campus venues.
// It is built once at startup and read-only afterwards, so lookups need
// no locking.
type StaticCatalog interface {
	FindMatching(query string) []domain_models.CampusLocation
	GetByID(id string) (domain_models.CampusLocation, bool)
	All() []domain_models.CampusLocation
}

type staticCatalog struct {
	locations []domain_models.CampusLocation
	byID      map[string]int
}

func NewStaticCatalog() StaticCatalog {
	entries := campusLocations()
	byID := make(map[string]int, len(entries))
	for i, loc := range entries {
		byID[loc.ID] = i
	}
	return &staticCatalog{locations: entries, byID: byID}
}

// FindMatching returns every venue whose name, description, category or
// keyword contains the query, case-insensitively. No ranking happens here;
// that is the search service's job.
func (c *staticCatalog) FindMatching(query string) []domain_models.CampusLocation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain_models.CampusLocation{}
	}

	matches := make([]domain_models.CampusLocation, 0, 8)
	for _, loc := range c.locations {
		if locationMatches(loc, q) {
			matches = append(matches, loc)
		}
	}
	return matches
}

func locationMatches(loc domain_models.CampusLocation, q string) bool {
	if strings.Contains(strings.ToLower(loc.Name), q) ||
		strings.Contains(strings.ToLower(loc.Description), q) ||
		strings.Contains(strings.ToLower(loc.Category), q) {
		return true
	}
	for _, kw := range loc.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

func (c *staticCatalog) GetByID(id string) (domain_models.CampusLocation, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain_models.CampusLocation{}, false
	}
	return c.locations[i], true
}

// All returns the full table in load order. Callers must not mutate entries.
func (c *staticCatalog) All() []domain_models.CampusLocation {
	out := make([]domain_models.CampusLocation, len(c.locations))
	copy(out, c.locations)
	return out
}
