package routes

import (
	"time"

	"travelgate/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHotelRoutes registers the hotel inventory endpoints.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/hotels")
	{
		api.GET("", hb.ListHotelsHandler)
		api.GET("/search", hb.SearchHotelsHandler)
		api.GET("/location", hb.FilterHotelsByLocationHandler)
	}
}

// RegisterRatehawkRoutes registers the Ratehawk provider endpoints.
func RegisterRatehawkRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/ratehawk")
	{
		api.POST("/suggest", hb.RatehawkSuggestHandler)
		api.POST("/search", hb.RatehawkSearchHandler)
	}
}

// RegisterTBORoutes registers the TBO provider endpoints.
func RegisterTBORoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/tbo")
	{
		api.POST("/suggest", hb.TBOSuggestHandler)
		api.POST("/hotel-codes", hb.TBOHotelCodesHandler)
		api.POST("/search", hb.TBOSearchHandler)
	}
}

// RegisterCombinedSearchRoutes registers the multi-provider search endpoint.
func RegisterCombinedSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/search/hotels", hb.CombinedSearchHandler)
}

// RegisterFlightRoutes registers the Duffel flight endpoints.
func RegisterFlightRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/flights")
	{
		api.POST("/search", hb.FlightSearchHandler)
		api.GET("/offers/:offerId", hb.OfferDetailsHandler)
		api.GET("/airports", hb.AirportSearchHandler)
		api.GET("/airlines/:airlineId", hb.AirlineDetailsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHotelRoutes(r, hb)
	RegisterRatehawkRoutes(r, hb)
	RegisterTBORoutes(r, hb)
	RegisterCombinedSearchRoutes(r, hb)
	RegisterFlightRoutes(r, hb)
	RegisterHealthRoute(r)
}
