package search

import (
	"context"

	"travelgate/models"
	"travelgate/services/ratehawk"
	"travelgate/services/tbo"
	"travelgate/utils"

	"go.uber.org/zap"
)

// Service runs one search across both hotel providers.
type Service interface {
	// Combined attempts the Ratehawk branch when a region id is supplied
	// and the TBO branch when a TBO city code is supplied. Branch failures
	// are collected in the result's Errors list; one branch failing never
	// prevents the other from being attempted.
	Combined(ctx context.Context, req models.SearchRequest) models.CombinedSearchResult
}

// DefaultSearchService is the production combined-search orchestrator.
type DefaultSearchService struct {
	Ratehawk ratehawk.Service
	TBO      tbo.Service
}

func (s *DefaultSearchService) Combined(ctx context.Context, req models.SearchRequest) models.CombinedSearchResult {
	logger := utils.GetLogger()
	result := models.CombinedSearchResult{Errors: []models.BranchError{}}

	if req.RegionID != nil {
		regionID, err := utils.ToInt64(req.RegionID)
		if err == nil {
			var data map[string]interface{}
			data, err = s.Ratehawk.Search(ctx, req, regionID)
			if err == nil {
				result.Ratehawk = data
			}
		}
		if err != nil {
			logger.Warn("Combined search: ratehawk branch failed", zap.Error(err))
			result.Errors = append(result.Errors, models.BranchError{
				Provider: "ratehawk",
				Error:    err.Error(),
			})
		}
	}

	if cityCode := utils.Stringify(req.TBOCityCode); cityCode != "" {
		codes := s.TBO.MappedHotelCodes(cityCode)
		body := map[string]interface{}{
			"CheckIn":     req.Checkin,
			"CheckOut":    req.Checkout,
			"CountryCode": req.CountryCode,
			"guests":      req.Guests,
		}
		payload := s.TBO.BuildSearchPayload(body, codes)
		data, err := s.TBO.Search(ctx, payload)
		if err != nil {
			logger.Warn("Combined search: tbo branch failed", zap.Error(err))
			result.Errors = append(result.Errors, models.BranchError{
				Provider: "tbo",
				Error:    err.Error(),
			})
		} else {
			result.TBO = data
		}
	}

	return result
}
