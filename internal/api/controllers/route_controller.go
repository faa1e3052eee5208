package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusnav/internal/models/domain_models"
	"campusnav/internal/models/request_models"
	"campusnav/internal/models/response_models"
	"campusnav/internal/services"
	"campusnav/pkg/geo"
	"campusnav/pkg/utils"
)

type RouteController struct {
	routeService services.RouteServiceInterface
}

func NewRouteController(routeService services.RouteServiceInterface) *RouteController {
	return &RouteController{
		routeService: routeService,
	}
}

// PlanRoute handles POST /route. Planning itself never fails; only bad
// input is rejected.
func (r *RouteController) PlanRoute(c *gin.Context) {
	var req request_models.PlanRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	origin := domain_models.Coordinate{Latitude: req.Origin.Latitude, Longitude: req.Origin.Longitude}
	destination := domain_models.Coordinate{Latitude: req.Destination.Latitude, Longitude: req.Destination.Longitude}

	if !geo.IsValidCoordinate(origin) || !geo.IsValidCoordinate(destination) {
		utils.HandleServiceError(c, utils.ErrInvalidCoordinate)
		return
	}

	mode := domain_models.TravelMode(req.Mode)
	if req.Mode == "" {
		mode = domain_models.ModeWalking
	} else if !domain_models.ValidTravelMode(mode) {
		utils.HandleServiceError(c, utils.ErrInvalidTravelMode)
		return
	}

	route := r.routeService.PlanRoute(c.Request.Context(), origin, destination, mode)

	utils.RespondSuccess(c, response_models.FromRoute(route), "Route planned successfully")
}
