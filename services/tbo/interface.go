package tbo

import (
	"context"

	"travelgate/models"
)

// Service is the TBO hotel-search API surface used by the handlers.
type Service interface {
	// ListCities returns the city list for a country.
	ListCities(ctx context.Context, countryCode string) ([]map[string]interface{}, error)

	// Suggest filters the country's cities by a partial name, max 10.
	Suggest(ctx context.Context, query, countryCode string) ([]models.Suggestion, error)

	// HotelCodeList calls the TBOHotelCodeList endpoint with the given
	// payload and returns the raw provider result.
	HotelCodeList(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)

	// ResolveHotelCodes resolves a region id or city code to a bounded
	// hotel-code list. It never fails: unresolvable inputs degrade to the
	// fallback list.
	ResolveHotelCodes(ctx context.Context, candidate string) []string

	// MappedHotelCodes resolves a city code through the static tables only,
	// falling back to the fixed list; used by the combined search path.
	MappedHotelCodes(cityCode string) []string

	// BuildSearchPayload assembles the provider search body from a
	// free-form client body and resolved hotel codes, coercing dates into
	// the future.
	BuildSearchPayload(body map[string]interface{}, hotelCodes []string) map[string]interface{}

	// Search runs a hotel search and returns the raw provider result.
	Search(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)
}
