package models

// FlightSlice is one directional leg of an itinerary.
type FlightSlice struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

// FlightPassenger identifies one traveller on an offer request.
type FlightPassenger struct {
	Type string `json:"type"`
}

// FlightSegment is one flight within a slice.
type FlightSegment struct {
	ID                                 string `json:"id"`
	Origin                             any    `json:"origin"`
	Destination                        any    `json:"destination"`
	DepartureTime                      string `json:"departureTime"`
	ArrivalTime                        string `json:"arrivalTime"`
	Duration                           string `json:"duration"`
	Aircraft                           any    `json:"aircraft"`
	Airline                            any    `json:"airline"`
	FlightNumber                       string `json:"flightNumber"`
	CabinClass                         string `json:"cabinClass"`
	PassengerIdentityDocumentsRequired bool   `json:"passengerIdentityDocumentsRequired"`
}

// OfferSlice is one leg of a priced offer.
type OfferSlice struct {
	Origin      any             `json:"origin"`
	Destination any             `json:"destination"`
	Segments    []FlightSegment `json:"segments"`
}

// OfferPassenger is one traveller on a priced offer.
type OfferPassenger struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Age        int    `json:"age"`
}

// FlightOffer is the client-facing shape of one priced, bookable itinerary.
type FlightOffer struct {
	ID            string           `json:"id"`
	TotalAmount   string           `json:"totalAmount"`
	TotalCurrency string           `json:"totalCurrency"`
	Slices        []OfferSlice     `json:"slices"`
	Passengers    []OfferPassenger `json:"passengers"`
	Owner         any              `json:"owner"`
	ExpiresAt     string           `json:"expiresAt"`
	CreatedAt     string           `json:"createdAt"`
}

// Airport is the client-facing shape of one airport suggestion.
type Airport struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IATACode  string  `json:"iataCode"`
	ICAOCode  string  `json:"icaoCode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timeZone"`
}
