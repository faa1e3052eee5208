package services_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusnav/internal/models/domain_models"
	"campusnav/internal/services"
	"campusnav/pkg/geo"
)

type mockDirectionsClient struct {
	getRoute func(ctx context.Context, origin, destination domain_models.Coordinate, mode domain_models.TravelMode) (domain_models.Route, error)
	calls    atomic.Int32
}

func (m *mockDirectionsClient) GetRoute(ctx context.Context, origin, destination domain_models.Coordinate, mode domain_models.TravelMode) (domain_models.Route, error) {
	m.calls.Add(1)
	return m.getRoute(ctx, origin, destination, mode)
}

var _ services.DirectionsClientInterface = (*mockDirectionsClient)(nil)

var (
	libraryGate = domain_models.Coordinate{Latitude: 7.4443, Longitude: 3.8973}
	sportsField = domain_models.Coordinate{Latitude: 7.4481, Longitude: 3.9005}
)

func providerRoute(origin, destination domain_models.Coordinate, mode domain_models.TravelMode) domain_models.Route {
	mid := domain_models.Coordinate{
		Latitude:  (origin.Latitude + destination.Latitude) / 2,
		Longitude: (origin.Longitude + destination.Longitude) / 2,
	}
	return domain_models.Route{
		Origin:          origin,
		Destination:     destination,
		Mode:            mode,
		DistanceMeters:  700,
		DurationSeconds: 500,
		Path:            []domain_models.Coordinate{origin, mid, destination},
	}
}

func TestPlanRoute_ProviderSuccess(t *testing.T) {
	directions := &mockDirectionsClient{
		getRoute: func(_ context.Context, o, d domain_models.Coordinate, m domain_models.TravelMode) (domain_models.Route, error) {
			return providerRoute(o, d, m), nil
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, time.Minute)

	got := svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)

	assert.False(t, got.IsEstimate)
	assert.Equal(t, 700.0, got.DistanceMeters)
	assert.Len(t, got.Path, 3)
}

func TestPlanRoute_FallbackOnProviderError(t *testing.T) {
	directions := &mockDirectionsClient{
		getRoute: func(context.Context, domain_models.Coordinate, domain_models.Coordinate, domain_models.TravelMode) (domain_models.Route, error) {
			return domain_models.Route{}, &services.ApiError{Kind: services.KindNetwork, Message: "provider down"}
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, time.Minute)

	got := svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)

	assert.True(t, got.IsEstimate)
	haversine := geo.DistanceMeters(libraryGate, sportsField)
	assert.InEpsilon(t, haversine, got.DistanceMeters, 0.01)
	assert.InEpsilon(t, haversine/1.39, got.DurationSeconds, 0.01)
	assert.Equal(t, []domain_models.Coordinate{libraryGate, sportsField}, got.Path)
}

func TestPlanRoute_FallbackOnNoRoute(t *testing.T) {
	directions := &mockDirectionsClient{
		getRoute: func(context.Context, domain_models.Coordinate, domain_models.Coordinate, domain_models.TravelMode) (domain_models.Route, error) {
			return domain_models.Route{}, &services.ApiError{Kind: services.KindNoRoute, Message: "no route"}
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, time.Minute)

	got := svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeDriving)

	assert.True(t, got.IsEstimate)
	assert.GreaterOrEqual(t, got.DistanceMeters, 0.0)
	assert.Positive(t, got.DurationSeconds)
}

func TestPlanRoute_DegradedPathBecomesStraightLine(t *testing.T) {
	directions := &mockDirectionsClient{
		getRoute: func(_ context.Context, o, d domain_models.Coordinate, m domain_models.TravelMode) (domain_models.Route, error) {
			r := providerRoute(o, d, m)
			// Summary intact, path unusable.
			r.Path = nil
			return r, nil
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, time.Minute)

	got := svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)

	assert.False(t, got.IsEstimate)
	assert.Equal(t, 700.0, got.DistanceMeters)
	assert.Equal(t, []domain_models.Coordinate{libraryGate, sportsField}, got.Path)
}

func TestPlanRoute_CachesByRoundedEndpoints(t *testing.T) {
	directions := &mockDirectionsClient{
		getRoute: func(_ context.Context, o, d domain_models.Coordinate, m domain_models.TravelMode) (domain_models.Route, error) {
			return providerRoute(o, d, m), nil
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, time.Minute)

	svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)

	// Nudge the origin by less than half of 1e-5 degrees; same cache slot.
	nudged := domain_models.Coordinate{
		Latitude:  libraryGate.Latitude + 0.000002,
		Longitude: libraryGate.Longitude,
	}
	svc.PlanRoute(context.Background(), nudged, sportsField, domain_models.ModeWalking)

	assert.Equal(t, int32(1), directions.calls.Load())
}

func TestPlanRoute_ModeIsPartOfCacheKey(t *testing.T) {
	directions := &mockDirectionsClient{
		getRoute: func(_ context.Context, o, d domain_models.Coordinate, m domain_models.TravelMode) (domain_models.Route, error) {
			return providerRoute(o, d, m), nil
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, time.Minute)

	svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)
	svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeDriving)

	assert.Equal(t, int32(2), directions.calls.Load())
}

func TestPlanRoute_FallbackCachedWithShorterTTL(t *testing.T) {
	directions := &mockDirectionsClient{
		getRoute: func(context.Context, domain_models.Coordinate, domain_models.Coordinate, domain_models.TravelMode) (domain_models.Route, error) {
			return domain_models.Route{}, &services.ApiError{Kind: services.KindTimeout, Message: "deadline"}
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, 20*time.Millisecond)

	svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)
	svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)
	require.Equal(t, int32(1), directions.calls.Load(), "fallback must still be cached")

	time.Sleep(40 * time.Millisecond)
	svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.ModeWalking)

	assert.Equal(t, int32(2), directions.calls.Load(), "expired fallback must retry the provider")
}

func TestPlanRoute_UnknownModeDefaultsToWalking(t *testing.T) {
	var seenMode domain_models.TravelMode
	directions := &mockDirectionsClient{
		getRoute: func(_ context.Context, o, d domain_models.Coordinate, m domain_models.TravelMode) (domain_models.Route, error) {
			seenMode = m
			return providerRoute(o, d, m), nil
		},
	}
	svc := services.NewRouteService(directions, 30*time.Minute, time.Minute)

	svc.PlanRoute(context.Background(), libraryGate, sportsField, domain_models.TravelMode("hoverboard"))

	assert.Equal(t, domain_models.ModeWalking, seenMode)
}
