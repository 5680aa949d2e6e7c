package duffel

import (
	"context"

	"travelgate/models"
)

// FlightSearchResult is the outcome of a flight search. Success false means
// the provider rejected the request; Error carries its message.
type FlightSearchResult struct {
	Success        bool
	OfferRequestID string
	Offers         []map[string]interface{}
	Slices         interface{}
	Error          string
}

// OfferResult is the outcome of an offer-details lookup.
type OfferResult struct {
	Success bool
	Offer   map[string]interface{}
	Error   string
}

// AirportsResult is the outcome of an airport search.
type AirportsResult struct {
	Success  bool
	Airports []map[string]interface{}
	Error    string
}

// AirlineResult is the outcome of an airline lookup.
type AirlineResult struct {
	Success bool
	Airline map[string]interface{}
	Error   string
}

// Service is the Duffel flights API surface used by the handlers. Methods
// report provider rejections through the result's Success flag rather than
// an error, so the route can distinguish a 400 from a 500.
type Service interface {
	SearchFlights(ctx context.Context, slices []models.FlightSlice, passengers []models.FlightPassenger, cabinClass string, maxConnections int) FlightSearchResult
	GetOfferDetails(ctx context.Context, offerID string) OfferResult
	SearchAirports(ctx context.Context, query string) AirportsResult
	GetAirline(ctx context.Context, airlineID string) AirlineResult
}
