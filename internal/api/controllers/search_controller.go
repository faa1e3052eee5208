package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"campusnav/internal/models/domain_models"
	"campusnav/internal/models/response_models"
	"campusnav/internal/services"
	"campusnav/pkg/geo"
	"campusnav/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search handles GET /search?q=...&limit=...&near=lat,lng. Searching never
// errors; short or unmatched queries come back as an empty result set.
func (s *SearchController) Search(c *gin.Context) {
	query := c.Query("q")

	limitStr := c.DefaultQuery("limit", "8")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-50)")
		return
	}

	var near *domain_models.Coordinate
	if nearStr := c.Query("near"); nearStr != "" {
		coord, ok := parseLatLng(nearStr)
		if !ok || !geo.IsValidCoordinate(coord) {
			utils.RespondError(c, http.StatusBadRequest, "Invalid near parameter, expected lat,lng")
			return
		}
		near = &coord
	}

	set := s.searchService.SearchCampus(c.Request.Context(), query, services.SearchOptions{MaxResults: limit})

	utils.RespondSuccess(c, response_models.FromResultSet(set, near), "Search completed")
}

// GetLocationByID handles GET /locations/:id against the static catalog.
func (s *SearchController) GetLocationByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location ID is required")
		return
	}

	loc, err := s.searchService.GetLocationByID(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, loc, "Location fetched successfully")
}

func parseLatLng(s string) (domain_models.Coordinate, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return domain_models.Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain_models.Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain_models.Coordinate{}, false
	}
	return domain_models.Coordinate{Latitude: lat, Longitude: lng}, true
}
