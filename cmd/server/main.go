package main

import (
	"log"

	"github.com/parkgrid/citations-backend-go/internal/api"
	"github.com/parkgrid/citations-backend-go/internal/config"
	"github.com/parkgrid/citations-backend-go/internal/database"
	"github.com/parkgrid/citations-backend-go/internal/geocode"
	"github.com/parkgrid/citations-backend-go/internal/handler"
	"github.com/parkgrid/citations-backend-go/internal/repository"
	"github.com/parkgrid/citations-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	citationRepo := repository.NewCitationRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	var geocoder service.Geocoder
	if cfg.GeocoderUserAgent != "" {
		client, err := geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent)
		if err != nil {
			log.Fatal("Failed to configure geocoder:", err)
		}
		geocoder = client
	} else {
		log.Println("GEOCODER_USER_AGENT not set; named point-of-interest lookups disabled")
	}

	resolver := service.NewPOIResolver(geocoder)
	h := api.Handlers{
		Citations: handler.NewCitationHandler(citationRepo),
		Stats:     handler.NewStatsHandler(service.NewStatsService(citationRepo)),
		Density:   handler.NewDensityHandler(service.NewDensityService(citationRepo, cfg.DefaultBins), resolver),
		Rate: handler.NewRateHandler(
			service.NewRateService(citationRepo),
			service.NewNearbyService(citationRepo),
			resolver,
		),
		Ingest: handler.NewIngestHandler(
			service.NewIngestService(citationRepo, taskRepo, cfg.SentinelLow, cfg.SentinelHigh),
		),
	}

	router := api.SetupRouter(cfg, h)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
