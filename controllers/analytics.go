// controllers/analytics.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"beautybar-backend/config"
	"beautybar-backend/models"
	"beautybar-backend/services"
	"beautybar-backend/utils"

	"github.com/gin-gonic/gin"
)

type TrackEventInput struct {
	Page      string `json:"page" binding:"required"`
	Section   string `json:"section"`
	VisitorID string `json:"visitor_id" binding:"required"`
}

// TrackEvent records a public page view. Storage failures are logged and
// swallowed: analytics must never surface an error to the site.
func TrackEvent(c *gin.Context) {
	var input TrackEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	event := models.AnalyticsEvent{
		Page:      input.Page,
		Section:   input.Section,
		VisitorID: input.VisitorID,
		Timestamp: time.Now().UTC(),
	}
	if err := config.DB.Create(&event).Error; err != nil {
		log.Printf("Failed to store analytics event: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "tracked"})
}

// GetAnalyticsSummary aggregates all recorded events for the admin
// dashboard. Day boundaries are UTC.
func GetAnalyticsSummary(c *gin.Context) {
	var events []models.AnalyticsEvent
	if err := config.DB.Order("timestamp ASC").Find(&events).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve analytics")
		return
	}

	c.JSON(http.StatusOK, services.SummarizeEvents(events, time.Now().UTC()))
}
