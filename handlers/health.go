package handlers

import (
	"net/http"
	"time"

	"travelgate/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	tboStatus := "not configured"
	if config.AppConfig.TBOUsername != "" {
		tboStatus = "configured"
	}
	duffelStatus := "not configured"
	if config.AppConfig.DuffelAPIToken != "" {
		duffelStatus = "configured"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": gin.H{
			"dynamodb": "connected",
			"ratehawk": "configured",
			"tbo":      tboStatus,
			"duffel":   duffelStatus,
		},
	})
}
