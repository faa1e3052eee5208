package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusnav/internal/models/domain_models"
	"campusnav/pkg/geo"
)

var (
	kennethDike = domain_models.Coordinate{Latitude: 7.4443, Longitude: 3.8973}
	trenchard   = domain_models.Coordinate{Latitude: 7.4410, Longitude: 3.8985}
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	assert.Zero(t, geo.DistanceMeters(kennethDike, kennethDike))
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	assert.Equal(t, geo.DistanceMeters(kennethDike, trenchard), geo.DistanceMeters(trenchard, kennethDike))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Paris to London, roughly 343.5 km.
	paris := domain_models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	london := domain_models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	d := geo.DistanceMeters(paris, london)
	assert.InDelta(t, 343500, d, 2000)
}

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		coord domain_models.Coordinate
		want  bool
	}{
		{"campus point", kennethDike, true},
		{"equator origin", domain_models.Coordinate{}, true},
		{"latitude too high", domain_models.Coordinate{Latitude: 90.001}, false},
		{"latitude too low", domain_models.Coordinate{Latitude: -91}, false},
		{"longitude too high", domain_models.Coordinate{Longitude: 180.5}, false},
		{"longitude too low", domain_models.Coordinate{Longitude: -200}, false},
		{"boundary values", domain_models.Coordinate{Latitude: -90, Longitude: 180}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.IsValidCoordinate(tt.coord))
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	assert.NoError(t, geo.ValidateCoordinate(trenchard))
	assert.Error(t, geo.ValidateCoordinate(domain_models.Coordinate{Latitude: 120}))
	assert.Error(t, geo.ValidateCoordinate(domain_models.Coordinate{Longitude: -181}))
}

func TestBoundingRegion_Contains(t *testing.T) {
	region := geo.BoundingRegion{Center: kennethDike, RadiusMeters: 3000}

	assert.True(t, region.Contains(trenchard))
	assert.False(t, region.Contains(domain_models.Coordinate{Latitude: 6.5244, Longitude: 3.3792})) // Lagos
	assert.False(t, region.Contains(domain_models.Coordinate{Latitude: 95, Longitude: 0}))
}
