package geo

import (
	"fmt"
	"math"

	"campusnav/internal/models/domain_models"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between a and b.
func DistanceMeters(a, b domain_models.Coordinate) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// IsValidCoordinate reports whether c is inside the WGS84 value ranges.
func IsValidCoordinate(c domain_models.Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// ValidateCoordinate returns an error describing why c is out of range.
func ValidateCoordinate(c domain_models.Coordinate) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("invalid latitude %f: must be within [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("invalid longitude %f: must be within [-180, 180]", c.Longitude)
	}
	return nil
}

// BoundingRegion is a circular region used to bias provider searches
// toward the campus.
type BoundingRegion struct {
	Center       domain_models.Coordinate
	RadiusMeters int
}

// Contains reports whether c falls inside the region.
func (r BoundingRegion) Contains(c domain_models.Coordinate) bool {
	if !IsValidCoordinate(c) {
		return false
	}
	return DistanceMeters(r.Center, c) <= float64(r.RadiusMeters)
}
