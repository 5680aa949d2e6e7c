package handlers

import (
	"net/http"

	"travelgate/services/tbo"
	"travelgate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TBOHandler serves the TBO provider endpoints.
type TBOHandler struct {
	TBO    tbo.Service
	Logger *zap.Logger
}

func NewTBOHandler(svc tbo.Service, logger *zap.Logger) *TBOHandler {
	return &TBOHandler{TBO: svc, Logger: logger}
}

// Suggest handles POST /tbo/suggest.
func (h *TBOHandler) Suggest(c *gin.Context) {
	var body struct {
		Query       string `json:"query"`
		CountryCode string `json:"country_code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	regions, err := h.TBO.Suggest(c.Request.Context(), body.Query, body.CountryCode)
	if err != nil {
		h.Logger.Error("TBO suggest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch TBO suggestions",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"regions":  regions,
		"hotels":   []any{},
		"provider": "tbo",
	})
}

// HotelCodes handles POST /tbo/hotel-codes.
func (h *TBOHandler) HotelCodes(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cityCode := utils.Stringify(body["CityCode"])
	if cityCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CityCode parameter is required"})
		return
	}

	detailed := body["IsDetailedResponse"]
	if detailed == nil {
		detailed = "true"
	}

	data, err := h.TBO.HotelCodeList(c.Request.Context(), map[string]interface{}{
		"CityCode":           cityCode,
		"IsDetailedResponse": detailed,
	})
	if err != nil {
		h.Logger.Error("TBO hotel codes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch hotel codes",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "provider": "tbo", "data": data})
}

// Search handles POST /tbo/search. The body is free-form: the city hint is
// taken from the first present of tbo_city_code, CityId, CityCode,
// RegionId, region_id. An explicit HotelCodes array skips resolution.
func (h *TBOHandler) Search(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var codes []string
	if provided, ok := body["HotelCodes"].([]interface{}); ok {
		for _, v := range provided {
			if code := utils.Stringify(v); code != "" {
				codes = append(codes, code)
			}
		}
	} else if candidate := cityCandidate(body); candidate != "" {
		h.Logger.Debug("TBO search: resolving hotel codes", zap.String("candidate", candidate))
		codes = h.TBO.ResolveHotelCodes(c.Request.Context(), candidate)
	}

	payload := h.TBO.BuildSearchPayload(body, codes)
	data, err := h.TBO.Search(c.Request.Context(), payload)
	if err != nil {
		h.Logger.Error("TBO search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to search TBO hotels",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "provider": "tbo", "data": data})
}

func cityCandidate(body map[string]interface{}) string {
	for _, key := range []string{"tbo_city_code", "CityId", "CityCode", "RegionId", "region_id"} {
		if v := utils.Stringify(body[key]); v != "" {
			return v
		}
	}
	return ""
}
