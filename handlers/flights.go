package handlers

import (
	"net/http"

	"travelgate/models"
	"travelgate/services/duffel"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FlightsHandler serves the Duffel flight endpoints.
type FlightsHandler struct {
	Duffel duffel.Service
	Logger *zap.Logger
}

func NewFlightsHandler(svc duffel.Service, logger *zap.Logger) *FlightsHandler {
	return &FlightsHandler{Duffel: svc, Logger: logger}
}

// SearchFlights handles POST /flights/search.
func (h *FlightsHandler) SearchFlights(c *gin.Context) {
	var body struct {
		Origin         string                   `json:"origin"`
		Destination    string                   `json:"destination"`
		DepartureDate  string                   `json:"departureDate"`
		ReturnDate     string                   `json:"returnDate"`
		Passengers     []models.FlightPassenger `json:"passengers"`
		CabinClass     string                   `json:"cabinClass"`
		MaxConnections int                      `json:"maxConnections"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if body.Origin == "" || body.Destination == "" || body.DepartureDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Origin, destination, and departure date are required",
		})
		return
	}

	slices := []models.FlightSlice{
		{Origin: body.Origin, Destination: body.Destination, DepartureDate: body.DepartureDate},
	}
	if body.ReturnDate != "" {
		slices = append(slices, models.FlightSlice{
			Origin:        body.Destination,
			Destination:   body.Origin,
			DepartureDate: body.ReturnDate,
		})
	}

	passengers := body.Passengers
	if len(passengers) == 0 {
		passengers = []models.FlightPassenger{{Type: "adult"}}
	}

	result := h.Duffel.SearchFlights(c.Request.Context(), slices, passengers, body.CabinClass, body.MaxConnections)
	if !result.Success {
		h.Logger.Warn("Flight search rejected", zap.String("error", result.Error))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error})
		return
	}

	offers := make([]models.FlightOffer, 0, len(result.Offers))
	for _, offer := range result.Offers {
		offers = append(offers, shapeOffer(offer))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"offerRequestId": result.OfferRequestID,
			"offers":         offers,
			"slices":         result.Slices,
		},
	})
}

// GetOfferDetails handles GET /flights/offers/:offerId.
func (h *FlightsHandler) GetOfferDetails(c *gin.Context) {
	result := h.Duffel.GetOfferDetails(c.Request.Context(), c.Param("offerId"))
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result.Offer})
}

// SearchAirports handles GET /flights/airports?q=...
func (h *FlightsHandler) SearchAirports(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Query parameter is required"})
		return
	}

	result := h.Duffel.SearchAirports(c.Request.Context(), query)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error})
		return
	}

	airports := make([]models.Airport, 0, len(result.Airports))
	for _, airport := range result.Airports {
		airports = append(airports, models.Airport{
			ID:        getString(airport, "id"),
			Name:      getString(airport, "name"),
			City:      getString(airport, "city_name"),
			Country:   getString(airport, "country_name"),
			IATACode:  getString(airport, "iata_code"),
			ICAOCode:  getString(airport, "icao_code"),
			Latitude:  getFloat(airport, "latitude"),
			Longitude: getFloat(airport, "longitude"),
			TimeZone:  getString(airport, "time_zone"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": airports})
}

// GetAirline handles GET /flights/airlines/:airlineId.
func (h *FlightsHandler) GetAirline(c *gin.Context) {
	result := h.Duffel.GetAirline(c.Request.Context(), c.Param("airlineId"))
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result.Airline})
}

// shapeOffer reshapes a raw Duffel offer into the client-facing form.
func shapeOffer(offer map[string]interface{}) models.FlightOffer {
	shaped := models.FlightOffer{
		ID:            getString(offer, "id"),
		TotalAmount:   getString(offer, "total_amount"),
		TotalCurrency: getString(offer, "total_currency"),
		Owner:         offer["owner"],
		ExpiresAt:     getString(offer, "expires_at"),
		CreatedAt:     getString(offer, "created_at"),
		Slices:        []models.OfferSlice{},
		Passengers:    []models.OfferPassenger{},
	}

	for _, s := range getList(offer, "slices") {
		slice := models.OfferSlice{
			Origin:      s["origin"],
			Destination: s["destination"],
			Segments:    []models.FlightSegment{},
		}
		for _, seg := range getList(s, "segments") {
			slice.Segments = append(slice.Segments, models.FlightSegment{
				ID:                                 getString(seg, "id"),
				Origin:                             seg["origin"],
				Destination:                        seg["destination"],
				DepartureTime:                      getString(seg, "departing_at"),
				ArrivalTime:                        getString(seg, "arriving_at"),
				Duration:                           getString(seg, "duration"),
				Aircraft:                           seg["aircraft"],
				Airline:                            seg["marketing_carrier"],
				FlightNumber:                       getString(seg, "marketing_carrier_flight_number"),
				CabinClass:                         getString(seg, "cabin_class"),
				PassengerIdentityDocumentsRequired: getBool(seg, "passenger_identity_documents_required"),
			})
		}
		shaped.Slices = append(shaped.Slices, slice)
	}

	for _, p := range getList(offer, "passengers") {
		shaped.Passengers = append(shaped.Passengers, models.OfferPassenger{
			ID:         getString(p, "id"),
			Type:       getString(p, "type"),
			GivenName:  getString(p, "given_name"),
			FamilyName: getString(p, "family_name"),
			Age:        int(getFloat(p, "age")),
		})
	}
	return shaped
}

func getString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func getFloat(m map[string]interface{}, key string) float64 {
	f, _ := m[key].(float64)
	return f
}

func getBool(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func getList(m map[string]interface{}, key string) []map[string]interface{} {
	items, _ := m[key].([]interface{})
	list := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if entry, ok := item.(map[string]interface{}); ok {
			list = append(list, entry)
		}
	}
	return list
}
