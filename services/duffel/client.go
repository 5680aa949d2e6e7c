package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"travelgate/models"
	"travelgate/utils"

	"go.uber.org/zap"
)

// DefaultDuffelService is the production implementation talking to the
// Duffel API with a bearer token.
type DefaultDuffelService struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewDuffelService(baseURL, token string) *DefaultDuffelService {
	return &DefaultDuffelService{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{},
	}
}

func (s *DefaultDuffelService) SearchFlights(ctx context.Context, slices []models.FlightSlice, passengers []models.FlightPassenger, cabinClass string, maxConnections int) FlightSearchResult {
	if cabinClass == "" {
		cabinClass = "economy"
	}
	if maxConnections <= 0 {
		maxConnections = 2
	}

	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"slices":          slices,
			"passengers":      passengers,
			"cabin_class":     cabinClass,
			"max_connections": maxConnections,
		},
	}

	rawReq, err := s.call(ctx, http.MethodPost, "/air/offer_requests", payload, "Flight search failed")
	if err != nil {
		return FlightSearchResult{Success: false, Error: err.Error()}
	}
	var offerRequest struct {
		ID     string      `json:"id"`
		Slices interface{} `json:"slices"`
	}
	if err := json.Unmarshal(rawReq, &offerRequest); err != nil {
		return FlightSearchResult{Success: false, Error: "Flight search failed"}
	}
	utils.GetLogger().Debug("Duffel offer request created", zap.String("offerRequestID", offerRequest.ID))

	rawOffers, err := s.call(ctx, http.MethodGet,
		fmt.Sprintf("/air/offers?offer_request_id=%s&limit=50", url.QueryEscape(offerRequest.ID)),
		nil, "Flight search failed")
	if err != nil {
		return FlightSearchResult{Success: false, Error: err.Error()}
	}
	var offers []map[string]interface{}
	if err := json.Unmarshal(rawOffers, &offers); err != nil {
		return FlightSearchResult{Success: false, Error: "Flight search failed"}
	}

	return FlightSearchResult{
		Success:        true,
		OfferRequestID: offerRequest.ID,
		Offers:         offers,
		Slices:         offerRequest.Slices,
	}
}

func (s *DefaultDuffelService) GetOfferDetails(ctx context.Context, offerID string) OfferResult {
	raw, err := s.call(ctx, http.MethodGet, "/air/offers/"+url.PathEscape(offerID), nil, "Failed to get offer details")
	if err != nil {
		return OfferResult{Success: false, Error: err.Error()}
	}
	var offer map[string]interface{}
	if err := json.Unmarshal(raw, &offer); err != nil {
		return OfferResult{Success: false, Error: "Failed to get offer details"}
	}
	return OfferResult{Success: true, Offer: offer}
}

func (s *DefaultDuffelService) SearchAirports(ctx context.Context, query string) AirportsResult {
	raw, err := s.call(ctx, http.MethodGet, "/air/airports?name="+url.QueryEscape(query), nil, "Airport search failed")
	if err != nil {
		return AirportsResult{Success: false, Error: err.Error()}
	}
	var airports []map[string]interface{}
	if err := json.Unmarshal(raw, &airports); err != nil {
		return AirportsResult{Success: false, Error: "Airport search failed"}
	}
	return AirportsResult{Success: true, Airports: airports}
}

func (s *DefaultDuffelService) GetAirline(ctx context.Context, airlineID string) AirlineResult {
	raw, err := s.call(ctx, http.MethodGet, "/air/airlines/"+url.PathEscape(airlineID), nil, "Failed to get airline info")
	if err != nil {
		return AirlineResult{Success: false, Error: err.Error()}
	}
	var airline map[string]interface{}
	if err := json.Unmarshal(raw, &airline); err != nil {
		return AirlineResult{Success: false, Error: "Failed to get airline info"}
	}
	return AirlineResult{Success: true, Airline: airline}
}

// call performs one Duffel request and returns the raw "data" payload.
// Provider errors surface as the first structured error message when
// present, else the fallback message.
func (s *DefaultDuffelService) call(ctx context.Context, method, path string, payload interface{}, fallback string) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.Token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Duffel-Version", "v2")

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", errorMessage(raw, fallback))
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		return nil, fmt.Errorf("%s", fallback)
	}
	return envelope.Data, nil
}

// errorMessage pulls the first structured error message out of a Duffel
// error body, falling back to a generic message.
func errorMessage(raw []byte, fallback string) string {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if len(parsed.Errors) > 0 && parsed.Errors[0].Message != "" {
			return parsed.Errors[0].Message
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return fallback
}
