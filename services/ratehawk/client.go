package ratehawk

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"travelgate/models"
)

// DefaultRatehawkService is the production implementation talking to the
// Ratehawk B2B API with basic auth (key id + api key).
type DefaultRatehawkService struct {
	BaseURL    string
	KeyID      string
	APIKey     string
	HTTPClient *http.Client
}

func NewRatehawkService(baseURL, keyID, apiKey string) *DefaultRatehawkService {
	return &DefaultRatehawkService{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		KeyID:      keyID,
		APIKey:     apiKey,
		HTTPClient: &http.Client{},
	}
}

func (s *DefaultRatehawkService) Suggest(ctx context.Context, query, language string, limit int) (*SuggestResult, error) {
	if language == "" {
		language = "en"
	}
	if limit <= 0 {
		limit = 10
	}

	raw, err := s.post(ctx, "/search/multicomplete/", map[string]interface{}{
		"query":    strings.TrimSpace(query),
		"language": language,
		"limit":    limit,
	})
	if err != nil {
		return nil, err
	}

	// Regions and hotels appear either top-level or nested under "data"
	// depending on the endpoint version.
	regions := extractList(raw, "regions")
	hotels := extractList(raw, "hotels")

	result := &SuggestResult{
		Regions: make([]models.Suggestion, 0, len(regions)),
		Hotels:  make([]models.Suggestion, 0, len(hotels)),
	}
	for _, region := range regions {
		result.Regions = append(result.Regions, models.Suggestion{
			ID:          firstOf(region, "id", "region_id"),
			Name:        asString(region["name"]),
			Type:        typeOrCity(region),
			CountryCode: asString(region["country_code"]),
			Provider:    "ratehawk",
		})
	}
	for _, hotel := range hotels {
		result.Hotels = append(result.Hotels, models.Suggestion{
			ID:          firstOf(hotel, "id", "hotel_id"),
			Name:        asString(hotel["name"]),
			Type:        "Hotel",
			CountryCode: asString(hotel["country_code"]),
			Provider:    "ratehawk",
		})
	}
	return result, nil
}

func (s *DefaultRatehawkService) Search(ctx context.Context, req models.SearchRequest, regionID int64) (map[string]interface{}, error) {
	req.ApplyDefaults()
	payload := map[string]interface{}{
		"checkin":   req.Checkin,
		"checkout":  req.Checkout,
		"residency": req.Residency,
		"language":  req.Language,
		"guests":    req.Guests,
		"currency":  req.Currency,
		"region_id": regionID,
	}
	return s.post(ctx, "/search/serp/region/", payload)
}

func (s *DefaultRatehawkService) post(ctx context.Context, path string, body interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(s.KeyID, s.APIKey)

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: string(data)}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// extractList finds the named list at the top level of the response or
// nested under "data".
func extractList(raw map[string]interface{}, key string) []map[string]interface{} {
	if list, ok := asMapList(raw[key]); ok {
		return list
	}
	if data, ok := raw["data"].(map[string]interface{}); ok {
		if list, ok := asMapList(data[key]); ok {
			return list
		}
	}
	return nil
}

func asMapList(v interface{}) ([]map[string]interface{}, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	list := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			list = append(list, m)
		}
	}
	return list, true
}

func firstOf(m map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func typeOrCity(region map[string]interface{}) string {
	if t := asString(region["type"]); t != "" {
		return t
	}
	return "City"
}
