package search_test

import (
	"context"
	"errors"
	"testing"

	"travelgate/models"
	"travelgate/services/ratehawk"
	"travelgate/services/search"
)

type fakeRatehawk struct {
	searchCalls int
	searchData  map[string]interface{}
	searchErr   error
}

func (f *fakeRatehawk) Suggest(ctx context.Context, query, language string, limit int) (*ratehawk.SuggestResult, error) {
	return &ratehawk.SuggestResult{}, nil
}

func (f *fakeRatehawk) Search(ctx context.Context, req models.SearchRequest, regionID int64) (map[string]interface{}, error) {
	f.searchCalls++
	return f.searchData, f.searchErr
}

type fakeTBO struct {
	searchCalls    int
	searchData     map[string]interface{}
	searchErr      error
	lastPayload    map[string]interface{}
	mappedRequests []string
}

func (f *fakeTBO) ListCities(ctx context.Context, countryCode string) ([]map[string]interface{}, error) {
	return nil, nil
}

func (f *fakeTBO) Suggest(ctx context.Context, query, countryCode string) ([]models.Suggestion, error) {
	return nil, nil
}

func (f *fakeTBO) HotelCodeList(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	return nil, nil
}

func (f *fakeTBO) ResolveHotelCodes(ctx context.Context, candidate string) []string {
	return []string{"1"}
}

func (f *fakeTBO) MappedHotelCodes(cityCode string) []string {
	f.mappedRequests = append(f.mappedRequests, cityCode)
	return []string{"1402689", "1405349"}
}

func (f *fakeTBO) BuildSearchPayload(body map[string]interface{}, hotelCodes []string) map[string]interface{} {
	return map[string]interface{}{"HotelCodes": hotelCodes}
}

func (f *fakeTBO) Search(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	f.searchCalls++
	f.lastPayload = payload
	return f.searchData, f.searchErr
}

func baseRequest() models.SearchRequest {
	req := models.SearchRequest{Checkin: "2025-12-01", Checkout: "2025-12-05"}
	req.ApplyDefaults()
	return req
}

func TestCombined_RatehawkOnly(t *testing.T) {
	rh := &fakeRatehawk{searchData: map[string]interface{}{"hotels": []interface{}{}}}
	tboFake := &fakeTBO{}
	svc := &search.DefaultSearchService{Ratehawk: rh, TBO: tboFake}

	req := baseRequest()
	req.RegionID = "100765"
	result := svc.Combined(context.Background(), req)

	if result.Ratehawk == nil {
		t.Error("ratehawk branch should carry data")
	}
	if result.TBO != nil {
		t.Errorf("tbo = %v, want nil when no city code supplied", result.TBO)
	}
	if tboFake.searchCalls != 0 {
		t.Errorf("tbo searched %d times, want 0", tboFake.searchCalls)
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v, want none", result.Errors)
	}
}

func TestCombined_RatehawkFailureIsIsolated(t *testing.T) {
	rh := &fakeRatehawk{searchErr: errors.New("serp timeout")}
	tboFake := &fakeTBO{searchData: map[string]interface{}{"Status": "ok"}}
	svc := &search.DefaultSearchService{Ratehawk: rh, TBO: tboFake}

	req := baseRequest()
	req.RegionID = float64(100765)
	req.TBOCityCode = "100765"
	result := svc.Combined(context.Background(), req)

	if result.Ratehawk != nil {
		t.Errorf("ratehawk = %v, want nil on failure", result.Ratehawk)
	}
	if result.TBO == nil {
		t.Error("tbo branch should still run when ratehawk fails")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one entry", result.Errors)
	}
	if result.Errors[0].Provider != "ratehawk" || result.Errors[0].Error != "serp timeout" {
		t.Errorf("error entry = %+v, want ratehawk/serp timeout", result.Errors[0])
	}
}

func TestCombined_TBOFailureIsIsolated(t *testing.T) {
	rh := &fakeRatehawk{searchData: map[string]interface{}{"hotels": []interface{}{}}}
	tboFake := &fakeTBO{searchErr: errors.New("search rejected")}
	svc := &search.DefaultSearchService{Ratehawk: rh, TBO: tboFake}

	req := baseRequest()
	req.RegionID = "100765"
	req.TBOCityCode = "100765"
	result := svc.Combined(context.Background(), req)

	if result.Ratehawk == nil {
		t.Error("ratehawk branch should succeed")
	}
	if result.TBO != nil {
		t.Errorf("tbo = %v, want nil on failure", result.TBO)
	}
	if len(result.Errors) != 1 || result.Errors[0].Provider != "tbo" {
		t.Errorf("errors = %v, want one tbo entry", result.Errors)
	}
}

func TestCombined_NeitherProviderRequested(t *testing.T) {
	rh := &fakeRatehawk{}
	tboFake := &fakeTBO{}
	svc := &search.DefaultSearchService{Ratehawk: rh, TBO: tboFake}

	result := svc.Combined(context.Background(), baseRequest())

	if result.Ratehawk != nil || result.TBO != nil {
		t.Errorf("result = %+v, want both branches nil", result)
	}
	if rh.searchCalls != 0 || tboFake.searchCalls != 0 {
		t.Error("no provider should be called without a region hint")
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v, want empty list", result.Errors)
	}
}

func TestCombined_TBOUsesMappedCodes(t *testing.T) {
	rh := &fakeRatehawk{}
	tboFake := &fakeTBO{searchData: map[string]interface{}{"Status": "ok"}}
	svc := &search.DefaultSearchService{Ratehawk: rh, TBO: tboFake}

	req := baseRequest()
	req.TBOCityCode = "100765"
	svc.Combined(context.Background(), req)

	if len(tboFake.mappedRequests) != 1 || tboFake.mappedRequests[0] != "100765" {
		t.Errorf("mapped code lookups = %v, want one for 100765", tboFake.mappedRequests)
	}
	codes, _ := tboFake.lastPayload["HotelCodes"].([]string)
	if len(codes) != 2 {
		t.Errorf("payload codes = %v, want the mapped list", tboFake.lastPayload["HotelCodes"])
	}
}
