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
	"campusnav/pkg/geo"
)

// PlacesClientInterface wraps the remote places-search endpoint.
type PlacesClientInterface interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain_models.CampusLocation, error)
}

// GooglePlacesClient talks to the Google-Places-style text search API with a
// location bias toward the campus region.
type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	Region  geo.BoundingRegion
}

func NewGooglePlacesClient(apiKey, baseURL string, region geo.BoundingRegion) *GooglePlacesClient {
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 8 * time.Second},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Region:  region,
	}
}

type placesResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string  `json:"place_id"`
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Types []string `json:"types"`
	} `json:"results"`
}

// Search runs one text search against the provider. Records without usable
// coordinates are dropped rather than failing the whole batch.
func (c *GooglePlacesClient) Search(ctx context.Context, query string, maxResults int) ([]domain_models.CampusLocation, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("location", fmt.Sprintf("%f,%f", c.Region.Center.Latitude, c.Region.Center.Longitude))
	q.Set("radius", fmt.Sprintf("%d", c.Region.RadiusMeters))
	q.Set("key", c.APIKey)

	resp, apiErr := getWithRetry(ctx, c.HTTP, c.BaseURL+"/textsearch/json?"+q.Encode())
	if apiErr != nil {
		return nil, apiErr
	}
	defer resp.Body.Close()

	var payload placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newApiError(KindMalformedResponse, "decode places response", err)
	}

	if apiErr := classifyPlacesStatus(payload.Status, payload.ErrorMessage); apiErr != nil {
		return nil, apiErr
	}

	locations := make([]domain_models.CampusLocation, 0, len(payload.Results))
	for _, rec := range payload.Results {
		coord := domain_models.Coordinate{
			Latitude:  rec.Geometry.Location.Lat,
			Longitude: rec.Geometry.Location.Lng,
		}
		// Records the provider returns without a geometry decode to (0,0);
		// neither that nor out-of-range values are usable.
		if !geo.IsValidCoordinate(coord) || (coord.Latitude == 0 && coord.Longitude == 0) {
			log.Printf("Dropping places record %q without usable coordinates", rec.Name)
			continue
		}

		locations = append(locations, domain_models.CampusLocation{
			ID:          rec.PlaceID,
			Name:        rec.Name,
			Description: rec.FormattedAddress,
			Category:    categoryFromTypes(rec.Types),
			Coordinates: coord,
			Keywords:    rec.Types,
			Source:      domain_models.SourcePlacesAPI,
			Address:     rec.FormattedAddress,
			Rating:      clampRating(rec.Rating),
		})
		if maxResults > 0 && len(locations) >= maxResults {
			break
		}
	}

	return locations, nil
}

func classifyPlacesStatus(status, message string) *ApiError {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "OVER_QUERY_LIMIT":
		return newApiError(KindQuota, message, nil)
	case "REQUEST_DENIED":
		return newApiError(KindAuth, message, nil)
	default:
		return newApiError(KindMalformedResponse, fmt.Sprintf("unexpected provider status %s: %s", status, message), nil)
	}
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// categoryFromTypes maps provider place types onto the fixed campus
// taxonomy. The first recognized type wins; everything else is Services.
func categoryFromTypes(types []string) string {
	for _, t := range types {
		if cat, ok := typeCategory[t]; ok {
			return cat
		}
	}
	return domain_models.CategoryServices
}

var typeCategory = map[string]string{
	"university":               domain_models.CategoryAcademic,
	"school":                   domain_models.CategoryAcademic,
	"library":                  domain_models.CategoryAcademic,
	"local_government_office":  domain_models.CategoryAdministration,
	"city_hall":                domain_models.CategoryAdministration,
	"hospital":                 domain_models.CategoryHealthServices,
	"doctor":                   domain_models.CategoryHealthServices,
	"pharmacy":                 domain_models.CategoryHealthServices,
	"health":                   domain_models.CategoryHealthServices,
	"stadium":                  domain_models.CategorySports,
	"gym":                      domain_models.CategorySports,
	"park":                     domain_models.CategoryLandmarks,
	"tourist_attraction":       domain_models.CategoryLandmarks,
	"zoo":                      domain_models.CategoryLandmarks,
	"church":                   domain_models.CategoryReligious,
	"mosque":                   domain_models.CategoryReligious,
	"place_of_worship":         domain_models.CategoryReligious,
	"restaurant":               domain_models.CategoryFoodServices,
	"cafe":                     domain_models.CategoryFoodServices,
	"food":                     domain_models.CategoryFoodServices,
	"meal_takeaway":            domain_models.CategoryFoodServices,
	"lodging":                  domain_models.CategoryAccommodation,
	"store":                    domain_models.CategoryShopping,
	"shopping_mall":            domain_models.CategoryShopping,
	"supermarket":              domain_models.CategoryShopping,
	"book_store":               domain_models.CategoryShopping,
	"bank":                     domain_models.CategoryFinancialServices,
	"atm":                      domain_models.CategoryFinancialServices,
	"post_office":              domain_models.CategoryServices,
	"police":                   domain_models.CategoryServices,
}
