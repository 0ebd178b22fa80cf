package main

import (
	"net/http"

	"wedding-map/internal/config"
	"wedding-map/internal/geolocation"
	"wedding-map/internal/handler"
	"wedding-map/internal/registry"
	"wedding-map/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	reg := registry.Wedding()

	// GeoIP is optional; without it every directions request is a search fallback
	var locator service.ClientLocator
	if config.GeoIPDatabase != "" {
		ipLocator, reader, err := geolocation.OpenIPLocator(config.GeoIPDatabase, config.GeoIPCacheSize, config.GeoIPCacheTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open geoip database")
		}
		defer reader.Close()
		locator = ipLocator
	}

	// Initialize layers
	catalogService := service.NewCatalogService(reg)
	directionsService := service.NewDirectionsService(reg, locator, config.GeolocationTimeout, log.Logger)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	directionsHandler := handler.NewDirectionsHandler(directionsService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	api.GET("/venues", catalogHandler.Venues)
	api.GET("/venues/:key", catalogHandler.Venue)
	api.GET("/venues/:key/directions", directionsHandler.Directions)
	api.GET("/routes", catalogHandler.Routes)

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
