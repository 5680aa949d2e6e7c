package handlers

import (
	"net/http"

	"travelgate/models"
	"travelgate/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the combined multi-provider search endpoint.
type SearchHandler struct {
	Search search.Service
	Logger *zap.Logger
}

func NewSearchHandler(svc search.Service, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Search: svc, Logger: logger}
}

// CombinedSearch handles POST /search/hotels. The response is always 200;
// per-provider failures are reported in results.errors.
func (h *SearchHandler) CombinedSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.Checkin == "" || req.Checkout == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: checkin, checkout",
		})
		return
	}

	req.ApplyDefaults()
	results := h.Search.Combined(c.Request.Context(), req)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"searchParams": gin.H{
			"checkin":       req.Checkin,
			"checkout":      req.Checkout,
			"residency":     req.Residency,
			"language":      req.Language,
			"guests":        req.Guests,
			"currency":      req.Currency,
			"region_id":     req.RegionID,
			"tbo_city_code": req.TBOCityCode,
			"country_code":  req.CountryCode,
		},
	})
}
