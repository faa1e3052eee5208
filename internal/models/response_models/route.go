package response_models

import (
	"campusnav/internal/models/domain_models"
)

type RouteResponse struct {
	Origin          domain_models.Coordinate   `json:"origin"`
	Destination     domain_models.Coordinate   `json:"destination"`
	Mode            string                     `json:"mode"`
	DistanceMeters  float64                    `json:"distance_meters"`
	DurationSeconds float64                    `json:"duration_seconds"`
	Path            []domain_models.Coordinate `json:"path"`
	IsEstimate      bool                       `json:"is_estimate"`
}

func FromRoute(r domain_models.Route) RouteResponse {
	return RouteResponse{
		Origin:          r.Origin,
		Destination:     r.Destination,
		Mode:            string(r.Mode),
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
		Path:            r.Path,
		IsEstimate:      r.IsEstimate,
	}
}
