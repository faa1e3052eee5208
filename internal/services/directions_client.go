package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campusnav/internal/models/domain_models"
	"campusnav/pkg/polyline"
)

// DirectionsClientInterface wraps the remote routing endpoint.
type DirectionsClientInterface interface {
	GetRoute(ctx context.Context, origin, destination domain_models.Coordinate, mode domain_models.TravelMode) (domain_models.Route, error)
}

// GoogleDirectionsClient talks to the Google-Directions-style routing API.
type GoogleDirectionsClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGoogleDirectionsClient(apiKey, baseURL string) *GoogleDirectionsClient {
	return &GoogleDirectionsClient{
		HTTP:    &http.Client{Timeout: 8 * time.Second},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetRoute requests one route for the given mode and returns the first
// route/leg's summary with the decoded overview path. A path that fails to
// decode or carries fewer than 2 points is returned as nil alongside the
// provider's distance and duration; callers decide how to degrade.
func (c *GoogleDirectionsClient) GetRoute(ctx context.Context, origin, destination domain_models.Coordinate, mode domain_models.TravelMode) (domain_models.Route, error) {
	q := url.Values{}
	q.Set("origin", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	q.Set("destination", fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude))
	q.Set("mode", string(mode))
	q.Set("units", "metric")
	q.Set("key", c.APIKey)

	resp, apiErr := getWithRetry(ctx, c.HTTP, c.BaseURL+"/json?"+q.Encode())
	if apiErr != nil {
		return domain_models.Route{}, apiErr
	}
	defer resp.Body.Close()

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain_models.Route{}, newApiError(KindMalformedResponse, "decode directions response", err)
	}

	if apiErr := classifyDirectionsStatus(payload.Status, payload.ErrorMessage); apiErr != nil {
		return domain_models.Route{}, apiErr
	}
	if len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return domain_models.Route{}, newApiError(KindNoRoute, "provider returned no route", nil)
	}

	first := payload.Routes[0]
	leg := first.Legs[0]

	path, err := polyline.Decode(first.OverviewPolyline.Points)
	if err != nil {
		// A bad path does not invalidate the summary; the planner will
		// substitute a straight line.
		log.Printf("Discarding undecodable overview path: %v", err)
		path = nil
	}
	if len(path) < 2 {
		path = nil
	}

	return domain_models.Route{
		Origin:          origin,
		Destination:     destination,
		Mode:            mode,
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
		Path:            path,
		IsEstimate:      false,
	}, nil
}

func classifyDirectionsStatus(status, message string) *ApiError {
	switch status {
	case "OK":
		return nil
	case "ZERO_RESULTS", "NOT_FOUND":
		return newApiError(KindNoRoute, "no route between the given points", nil)
	case "OVER_QUERY_LIMIT":
		return newApiError(KindQuota, message, nil)
	case "REQUEST_DENIED":
		return newApiError(KindAuth, message, nil)
	default:
		return newApiError(KindMalformedResponse, fmt.Sprintf("unexpected provider status %s: %s", status, message), nil)
	}
}
