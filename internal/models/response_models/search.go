package response_models

import (
	"campusnav/internal/models/domain_models"
	"campusnav/pkg/geo"
)

type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Keywords    []string `json:"keywords"`
	Source      string   `json:"source"`
	Address     string   `json:"address,omitempty"`
	Rating      float64  `json:"rating,omitempty"`

	// Straight-line distance from the caller's position, set only when the
	// search request carried a "near" origin.
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

type SearchResponse struct {
	Query        string     `json:"query"`
	Source       string     `json:"source"`
	SearchTimeMs int        `json:"search_time_ms"`
	Results      []Location `json:"results"`
}

// FromResultSet maps a result set onto the wire shape, annotating each hit
// with its distance from near when provided.
func FromResultSet(set domain_models.SearchResultSet, near *domain_models.Coordinate) SearchResponse {
	results := make([]Location, 0, len(set.Results))
	for _, loc := range set.Results {
		item := Location{
			ID:          loc.ID,
			Name:        loc.Name,
			Description: loc.Description,
			Category:    loc.Category,
			Latitude:    loc.Coordinates.Latitude,
			Longitude:   loc.Coordinates.Longitude,
			Keywords:    loc.Keywords,
			Source:      string(loc.Source),
			Address:     loc.Address,
			Rating:      loc.Rating,
		}
		if near != nil {
			d := geo.DistanceMeters(*near, loc.Coordinates)
			item.DistanceMeters = &d
		}
		results = append(results, item)
	}

	return SearchResponse{
		Query:        set.Query,
		Source:       string(set.Source),
		SearchTimeMs: set.SearchTimeMs,
		Results:      results,
	}
}
