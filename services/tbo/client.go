package tbo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"travelgate/models"
	"travelgate/utils"
)

// DefaultTBOService is the production implementation talking to the TBO
// holidays hotel API with basic auth. Credentials travel both in the
// Authorization header and in the request body, as the API requires.
type DefaultTBOService struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
	Tables     Tables

	// Now is the clock used for date coercion; overridable in tests.
	Now func() time.Time
}

func NewTBOService(baseURL, username, password string, tables Tables) *DefaultTBOService {
	return &DefaultTBOService{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Username:   username,
		Password:   password,
		HTTPClient: &http.Client{},
		Tables:     tables,
		Now:        time.Now,
	}
}

// extraction pulls a value out of one possible response envelope shape.
// Extractors are tried in a fixed order; the first success wins.
type extraction func(map[string]interface{}) (interface{}, bool)

func atPath(path ...string) extraction {
	return func(raw map[string]interface{}) (interface{}, bool) {
		var v interface{} = raw
		for _, key := range path {
			m, ok := v.(map[string]interface{})
			if !ok {
				return nil, false
			}
			v, ok = m[key]
			if !ok || v == nil {
				return nil, false
			}
		}
		return v, true
	}
}

var cityListExtractors = []extraction{
	atPath("data", "Cities"),
	atPath("Cities"),
	atPath("Data", "Cities"),
	atPath("Data"),
}

func (s *DefaultTBOService) ListCities(ctx context.Context, countryCode string) ([]map[string]interface{}, error) {
	if countryCode == "" {
		countryCode = "AE"
	}

	raw, err := s.fetch(ctx, "CityList", map[string]interface{}{
		"CountryCode":        countryCode,
		"IsDetailedResponse": "true",
	})
	if err != nil {
		return nil, err
	}

	for _, extract := range cityListExtractors {
		if v, ok := extract(raw); ok {
			if cities, ok := asMapList(v); ok {
				return cities, nil
			}
		}
	}
	return []map[string]interface{}{}, nil
}

func (s *DefaultTBOService) Suggest(ctx context.Context, query, countryCode string) ([]models.Suggestion, error) {
	cities, err := s.ListCities(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	regions := make([]models.Suggestion, 0, 10)
	for _, city := range cities {
		name, _ := city["CityName"].(string)
		if name == "" || !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		regions = append(regions, models.Suggestion{
			ID:          city["CityCode"],
			Name:        name,
			Type:        "City",
			CountryCode: utils.Stringify(city["CountryCode"]),
			Provider:    "tbo",
		})
		if len(regions) == 10 {
			break
		}
	}
	return regions, nil
}

func (s *DefaultTBOService) HotelCodeList(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.fetch(ctx, "TBOHotelCodeList", payload)
}

func (s *DefaultTBOService) Search(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.fetch(ctx, "search", payload)
}

// fetch posts to a TBO endpoint with credentials merged into the body.
func (s *DefaultTBOService) fetch(ctx context.Context, path string, payload map[string]interface{}) (map[string]interface{}, error) {
	if s.Username == "" || s.Password == "" {
		return nil, &CredentialsError{}
	}

	body := map[string]interface{}{
		"UserName": s.Username,
		"Password": s.Password,
	}
	for k, v := range payload {
		body[k] = v
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/"+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(s.Username, s.Password)

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
