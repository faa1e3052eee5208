package domain_models

// TravelMode is the travel profile requested from the directions provider.
type TravelMode string

const (
	ModeWalking   TravelMode = "walking"
	ModeDriving   TravelMode = "driving"
	ModeBicycling TravelMode = "bicycling"
)

// ValidTravelMode reports whether m is one of the supported modes.
func ValidTravelMode(m TravelMode) bool {
	switch m {
	case ModeWalking, ModeDriving, ModeBicycling:
		return true
	}
	return false
}

// Route is a planned path between two points. IsEstimate marks a
// straight-line fallback rather than a provider-returned route.
type Route struct {
	Origin          Coordinate   `json:"origin"`
	Destination     Coordinate   `json:"destination"`
	Mode            TravelMode   `json:"mode"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Path            []Coordinate `json:"path"`
	IsEstimate      bool         `json:"is_estimate"`
}
