package main

import (
	"log"

	"github.com/mnakagawa/eatmap-backend-go/internal/api"
	"github.com/mnakagawa/eatmap-backend-go/internal/config"
	"github.com/mnakagawa/eatmap-backend-go/internal/database"
	"github.com/mnakagawa/eatmap-backend-go/internal/geocode"
	"github.com/mnakagawa/eatmap-backend-go/internal/loader"
	"github.com/mnakagawa/eatmap-backend-go/internal/repository"
	"github.com/mnakagawa/eatmap-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	// The geocode cache is owned here and shared for the process
	// lifetime; it is never an implicit global.
	cacheRepo := repository.NewGeocodeCacheRepository(database.GetDB())
	if n, err := cacheRepo.Count(); err == nil {
		log.Printf("Geocode cache primed with %d addresses", n)
	}
	google := geocode.NewGoogleClient(cfg.GeocodingAPIKey, cfg.GeocodeTimeout)
	geocoder := geocode.NewCachedGeocoder(google, cacheRepo)

	csvLoader := loader.New(cfg.CSVPath)
	mapService := service.NewMapService(csvLoader, geocoder, cfg.DefaultZoom)

	router := api.SetupRouter(cfg, mapService)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
