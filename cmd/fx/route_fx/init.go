package route_fx

import (
	"go.uber.org/fx"

	"campusnav/internal/infra"
	"campusnav/internal/services"
)

var Module = fx.Provide(
	provideDirectionsClient, provideRouteService)

func provideDirectionsClient(cfg infra.Config) services.DirectionsClientInterface {
	return services.NewGoogleDirectionsClient(cfg.PlacesAPIKey, cfg.DirectionsBaseURL)
}

func provideRouteService(directions services.DirectionsClientInterface, cfg infra.Config) services.RouteServiceInterface {
	return services.NewRouteService(directions, cfg.RouteCacheTTL, cfg.FallbackRouteTTL)
}
