package infra

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"campusnav/internal/models/domain_models"
	"campusnav/pkg/geo"
)

// Config carries everything the engine reads from the environment.
// The campus defaults point at the University of Ibadan main campus.
type Config struct {
	Port string

	PlacesAPIKey      string
	PlacesBaseURL     string
	DirectionsBaseURL string

	CampusRegion geo.BoundingRegion

	SearchCacheTTL   time.Duration
	RouteCacheTTL    time.Duration
	FallbackRouteTTL time.Duration
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}

	cfg := Config{
		Port:              envOr("PORT", "8080"),
		PlacesAPIKey:      os.Getenv("PLACES_API_KEY"),
		PlacesBaseURL:     envOr("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		DirectionsBaseURL: envOr("DIRECTIONS_BASE_URL", "https://maps.googleapis.com/maps/api/directions"),
		CampusRegion: geo.BoundingRegion{
			Center: domain_models.Coordinate{
				Latitude:  envFloatOr("CAMPUS_CENTER_LAT", 7.4443),
				Longitude: envFloatOr("CAMPUS_CENTER_LNG", 3.8973),
			},
			RadiusMeters: envIntOr("CAMPUS_RADIUS_M", 3000),
		},
		SearchCacheTTL:   envDurationOr("SEARCH_CACHE_TTL", 5*time.Minute),
		RouteCacheTTL:    envDurationOr("ROUTE_CACHE_TTL", 30*time.Minute),
		FallbackRouteTTL: envDurationOr("FALLBACK_ROUTE_TTL", 2*time.Minute),
	}

	if cfg.PlacesAPIKey == "" {
		log.Println("PLACES_API_KEY not set; search will run on the static catalog only")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloatOr(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %f", key, v, fallback)
		return fallback
	}
	return f
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
