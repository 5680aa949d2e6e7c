package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Hotel inventory endpoints
	ListHotelsHandler             gin.HandlerFunc
	SearchHotelsHandler           gin.HandlerFunc
	FilterHotelsByLocationHandler gin.HandlerFunc

	// Ratehawk endpoints
	RatehawkSuggestHandler gin.HandlerFunc
	RatehawkSearchHandler  gin.HandlerFunc

	// TBO endpoints
	TBOSuggestHandler    gin.HandlerFunc
	TBOHotelCodesHandler gin.HandlerFunc
	TBOSearchHandler     gin.HandlerFunc

	// Combined search endpoint
	CombinedSearchHandler gin.HandlerFunc

	// Flight endpoints
	FlightSearchHandler   gin.HandlerFunc
	OfferDetailsHandler   gin.HandlerFunc
	AirportSearchHandler  gin.HandlerFunc
	AirlineDetailsHandler gin.HandlerFunc
}
