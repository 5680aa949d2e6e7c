package handlers

import (
	"net/http"

	"travelgate/services/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelsHandler serves the hotel inventory endpoints backed by the store.
type HotelsHandler struct {
	Store  store.Reader
	Logger *zap.Logger
}

func NewHotelsHandler(reader store.Reader, logger *zap.Logger) *HotelsHandler {
	return &HotelsHandler{Store: reader, Logger: logger}
}

// ListHotels handles GET /hotels with cursor-based pagination.
func (h *HotelsHandler) ListHotels(c *gin.Context) {
	lastKey := c.Query("lastKey")

	items, next, err := h.Store.List(c.Request.Context(), lastKey)
	if err != nil {
		h.Logger.Error("ListHotels: store scan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotels"})
		return
	}

	var nextPageToken any
	if next != "" {
		nextPageToken = next
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"count":         len(items),
		"items":         items,
		"nextPageToken": nextPageToken,
	})
}

// SearchHotels handles GET /hotels/search?name=...
func (h *HotelsHandler) SearchHotels(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ?name param"})
		return
	}

	items, err := h.Store.SearchByName(c.Request.Context(), name)
	if err != nil {
		h.Logger.Error("SearchHotels: store scan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search hotels"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "items": items})
}

// FilterHotelsByLocation handles GET /hotels/location?region=...
func (h *HotelsHandler) FilterHotelsByLocation(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ?region param"})
		return
	}

	items, err := h.Store.FilterByRegion(c.Request.Context(), region)
	if err != nil {
		h.Logger.Error("FilterHotelsByLocation: store scan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter hotels"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "items": items})
}
