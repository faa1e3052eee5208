package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"campusnav/internal/models/domain_models"
	"campusnav/pkg/geo"
	mem "campusnav/pkg/memcache"
)

// Estimated travel speeds for fallback routes, meters per second.
const (
	walkingSpeedMps   = 1.39
	bicyclingSpeedMps = 4.2
	drivingSpeedMps   = 8.3
)

type RouteServiceInterface interface {
	PlanRoute(ctx context.Context, origin, destination domain_models.Coordinate, mode domain_models.TravelMode) domain_models.Route
}

// RouteService turns a destination choice into a walkable route. It never
// fails: when the directions provider is down it answers with a straight
// haversine estimate marked IsEstimate.
type RouteService struct {
	directions  DirectionsClientInterface
	cache       *mem.Store[domain_models.Route]
	routeTTL    time.Duration
	fallbackTTL time.Duration
}

func NewRouteService(directions DirectionsClientInterface, routeTTL, fallbackTTL time.Duration) RouteServiceInterface {
	return &RouteService{
		directions:  directions,
		cache:       mem.NewStore[domain_models.Route](),
		routeTTL:    routeTTL,
		fallbackTTL: fallbackTTL,
	}
}

func (s *RouteService) PlanRoute(ctx context.Context, origin, destination domain_models.Coordinate, mode domain_models.TravelMode) domain_models.Route {
	if !domain_models.ValidTravelMode(mode) {
		mode = domain_models.ModeWalking
	}

	key := routeCacheKey(origin, destination, mode)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	route, err := s.directions.GetRoute(ctx, origin, destination, mode)
	ttl := s.routeTTL
	if err != nil {
		log.Printf("Directions for %s degraded to straight-line estimate: %v", key, err)
		route = s.estimateRoute(origin, destination, mode)
		// Shorter TTL so a transient provider outage is retried sooner.
		ttl = s.fallbackTTL
	} else if len(route.Path) < 2 {
		// Provider summary survived but the path did not; draw the line.
		route.Path = []domain_models.Coordinate{origin, destination}
	}

	s.cache.Set(key, route, ttl)
	return route
}

// routeCacheKey rounds both endpoints to 5 decimal places (about a meter)
// so near-identical requests share an entry.
func routeCacheKey(origin, destination domain_models.Coordinate, mode domain_models.TravelMode) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f|%s",
		origin.Latitude, origin.Longitude,
		destination.Latitude, destination.Longitude,
		mode)
}

func (s *RouteService) estimateRoute(origin, destination domain_models.Coordinate, mode domain_models.TravelMode) domain_models.Route {
	distance := geo.DistanceMeters(origin, destination)

	speed := walkingSpeedMps
	switch mode {
	case domain_models.ModeBicycling:
		speed = bicyclingSpeedMps
	case domain_models.ModeDriving:
		speed = drivingSpeedMps
	}

	return domain_models.Route{
		Origin:          origin,
		Destination:     destination,
		Mode:            mode,
		DistanceMeters:  distance,
		DurationSeconds: distance / speed,
		Path:            []domain_models.Coordinate{origin, destination},
		IsEstimate:      true,
	}
}
