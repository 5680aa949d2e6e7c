package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelgate/config"
	"travelgate/handlers"
	"travelgate/middleware"
	"travelgate/routes"
	"travelgate/services/duffel"
	"travelgate/services/ratehawk"
	"travelgate/services/search"
	"travelgate/services/store"
	"travelgate/services/tbo"
	"travelgate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())

	// Provider clients.
	storeReader := store.NewDynamoReader(config.AppConfig.AWSRegion, config.AppConfig.DynamoTable)
	ratehawkService := ratehawk.NewRatehawkService(
		config.AppConfig.RatehawkBaseURL,
		config.AppConfig.RatehawkKeyID,
		config.AppConfig.RatehawkAPIKey,
	)
	tboService := tbo.NewTBOService(
		config.AppConfig.TBOBaseURL,
		config.AppConfig.TBOUsername,
		config.AppConfig.TBOPassword,
		tbo.DefaultTables(),
	)
	duffelService := duffel.NewDuffelService(
		config.AppConfig.DuffelBaseURL,
		config.AppConfig.DuffelAPIToken,
	)
	searchService := &search.DefaultSearchService{
		Ratehawk: ratehawkService,
		TBO:      tboService,
	}

	// Handlers.
	hotelsHandler := handlers.NewHotelsHandler(storeReader, logger)
	ratehawkHandler := handlers.NewRatehawkHandler(ratehawkService, logger)
	tboHandler := handlers.NewTBOHandler(tboService, logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger)
	flightsHandler := handlers.NewFlightsHandler(duffelService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListHotelsHandler:             hotelsHandler.ListHotels,
		SearchHotelsHandler:           hotelsHandler.SearchHotels,
		FilterHotelsByLocationHandler: hotelsHandler.FilterHotelsByLocation,

		RatehawkSuggestHandler: ratehawkHandler.Suggest,
		RatehawkSearchHandler:  ratehawkHandler.Search,

		TBOSuggestHandler:    tboHandler.Suggest,
		TBOHotelCodesHandler: tboHandler.HotelCodes,
		TBOSearchHandler:     tboHandler.Search,

		CombinedSearchHandler: searchHandler.CombinedSearch,

		FlightSearchHandler:   flightsHandler.SearchFlights,
		OfferDetailsHandler:   flightsHandler.GetOfferDetails,
		AirportSearchHandler:  flightsHandler.SearchAirports,
		AirlineDetailsHandler: flightsHandler.GetAirline,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	logger.Sugar().Infof("DynamoDB table: %s (region %s)", config.AppConfig.DynamoTable, config.AppConfig.AWSRegion)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
