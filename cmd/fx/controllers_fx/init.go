package controllers_fx

import (
	"go.uber.org/fx"

	"campusnav/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewSearchController,
	controllers.NewRouteController,
)
