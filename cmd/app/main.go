package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"campusnav/cmd/fx/catalog_fx"
	"campusnav/cmd/fx/config_fx"
	"campusnav/cmd/fx/controllers_fx"
	"campusnav/cmd/fx/route_fx"
	"campusnav/cmd/fx/search_fx"
	"campusnav/internal/api/controllers"
	"campusnav/internal/infra"
	"campusnav/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		catalog_fx.Module,
		search_fx.Module,
		route_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	searchController *controllers.SearchController,
	routeController *controllers.RouteController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, searchController, routeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	searchController *controllers.SearchController,
	routeController *controllers.RouteController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/search", searchController.Search)

	locations := r.Group("/locations")
	locations.GET("/:id", searchController.GetLocationByID)

	r.POST("/route", routeController.PlanRoute)
}
