package domain_models

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationSource tells where a CampusLocation record came from.
type LocationSource string

const (
	SourceStatic    LocationSource = "static"
	SourcePlacesAPI LocationSource = "places_api"
)

// Fixed category taxonomy for campus venues. API-sourced records are
// normalized into one of these at the client boundary.
const (
	CategoryAcademic          = "Academic"
	CategoryAdministration    = "Administration"
	CategoryStudentServices   = "Student Services"
	CategoryHealthServices    = "Health Services"
	CategorySports            = "Sports"
	CategoryFacilities        = "Facilities"
	CategoryLandmarks         = "Landmarks"
	CategoryReligious         = "Religious"
	CategoryFoodServices      = "Food Services"
	CategoryAccommodation     = "Accommodation"
	CategoryShopping          = "Shopping"
	CategoryFinancialServices = "Financial Services"
	CategoryServices          = "Services"
)

// CampusLocation is the canonical, source-agnostic representation of a place.
// Static entries are built once at load time and never mutated; API-sourced
// entries are value objects built per response.
type CampusLocation struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Coordinates Coordinate     `json:"coordinates"`
	Keywords    []string       `json:"keywords"`
	Source      LocationSource `json:"source"`

	// Present only when Source == SourcePlacesAPI.
	Address string  `json:"address,omitempty"`
	Rating  float64 `json:"rating,omitempty"`
}

// ResultSource tells how a SearchResultSet was produced.
type ResultSource string

const (
	ResultSourceCache      ResultSource = "cache"
	ResultSourceStaticOnly ResultSource = "static_only"
	ResultSourceMerged     ResultSource = "merged"
	ResultSourceFallback   ResultSource = "fallback"
)

// SearchResultSet is one search outcome: results are score-ordered descending.
type SearchResultSet struct {
	Results      []CampusLocation `json:"results"`
	Source       ResultSource     `json:"source"`
	SearchTimeMs int              `json:"search_time_ms"`
	Query        string           `json:"query"`
}
