package search_fx

import (
	"go.uber.org/fx"

	"campusnav/internal/infra"
	"campusnav/internal/repositories"
	"campusnav/internal/services"
)

var Module = fx.Provide(
	providePlacesClient, provideSearchService)

func providePlacesClient(cfg infra.Config) services.PlacesClientInterface {
	return services.NewGooglePlacesClient(cfg.PlacesAPIKey, cfg.PlacesBaseURL, cfg.CampusRegion)
}

func provideSearchService(catalog repositories.StaticCatalog, places services.PlacesClientInterface, cfg infra.Config) services.SearchServiceInterface {
	return services.NewSearchService(catalog, places, cfg.SearchCacheTTL)
}
