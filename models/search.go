package models

// GuestGroup describes the occupants of one room in a search request.
type GuestGroup struct {
	Adults   int   `json:"adults"`
	Children []int `json:"children"`
}

// SearchRequest is the simplified client payload accepted by the hotel
// search endpoints. Dates are ISO YYYY-MM-DD strings.
type SearchRequest struct {
	Checkin     string       `json:"checkin"`
	Checkout    string       `json:"checkout"`
	Residency   string       `json:"residency"`
	Language    string       `json:"language"`
	Guests      []GuestGroup `json:"guests"`
	Currency    string       `json:"currency"`
	RegionID    any          `json:"region_id"`
	TBOCityCode any          `json:"tbo_city_code"`
	CountryCode string       `json:"country_code"`
}

// ApplyDefaults fills the default residency, language, currency and guest
// list used by the Ratehawk path.
func (r *SearchRequest) ApplyDefaults() {
	if r.Residency == "" {
		r.Residency = "GB"
	}
	if r.Language == "" {
		r.Language = "en"
	}
	if r.Currency == "" {
		r.Currency = "EUR"
	}
	if len(r.Guests) == 0 {
		r.Guests = []GuestGroup{{Adults: 1, Children: []int{}}}
	}
}

// Suggestion is an autocomplete result normalized across providers.
// Type is one of "City", "Airport" or "Hotel".
type Suggestion struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	CountryCode string `json:"country_code"`
	Provider    string `json:"provider"`
}

// BranchError records one provider branch failure in a combined search.
type BranchError struct {
	Provider string `json:"provider"`
	Error    string `json:"error"`
}

// CombinedSearchResult aggregates the independent provider branches of a
// combined search. A nil branch means the provider was not attempted or
// failed; failures are reported in Errors, never as a non-200 status.
type CombinedSearchResult struct {
	Ratehawk any           `json:"ratehawk"`
	TBO      any           `json:"tbo"`
	Errors   []BranchError `json:"errors"`
}
