package catalog_fx

import (
	"go.uber.org/fx"

	"campusnav/internal/repositories"
)

var Module = fx.Provide(provideStaticCatalog)

func provideStaticCatalog() repositories.StaticCatalog {
	return repositories.NewStaticCatalog()
}
