package handlers

import (
	"net/http"

	"travelgate/models"
	"travelgate/services/ratehawk"
	"travelgate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RatehawkHandler serves the Ratehawk provider endpoints.
type RatehawkHandler struct {
	Ratehawk ratehawk.Service
	Logger   *zap.Logger
}

func NewRatehawkHandler(svc ratehawk.Service, logger *zap.Logger) *RatehawkHandler {
	return &RatehawkHandler{Ratehawk: svc, Logger: logger}
}

// Suggest handles POST /ratehawk/suggest.
func (h *RatehawkHandler) Suggest(c *gin.Context) {
	var body struct {
		Query    string `json:"query"`
		Language string `json:"language"`
		Limit    int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	result, err := h.Ratehawk.Suggest(c.Request.Context(), body.Query, body.Language, body.Limit)
	if err != nil {
		h.Logger.Error("Ratehawk suggest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch suggestions",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"regions":  result.Regions,
		"hotels":   result.Hotels,
		"provider": "ratehawk",
	})
}

// Search handles POST /ratehawk/search.
func (h *RatehawkHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	regionID, regionErr := utils.ToInt64(req.RegionID)
	if req.Checkin == "" || req.Checkout == "" || req.RegionID == nil || regionErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: checkin, checkout, region_id",
		})
		return
	}

	data, err := h.Ratehawk.Search(c.Request.Context(), req, regionID)
	if err != nil {
		h.Logger.Error("Ratehawk search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to search hotels",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"provider": "ratehawk",
		"data":     data,
	})
}
