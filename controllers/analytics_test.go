package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"beautybar-backend/config"
	"beautybar-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackEvent(t *testing.T, r *gin.Engine, page, section, visitor string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/analytics/track", "", gin.H{
		"page": page, "section": section, "visitor_id": visitor,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "tracked", decodeBody(t, w)["status"])
}

func TestTrackValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/analytics/track", "", gin.H{"page": "/"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsSummary(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	trackEvent(t, r, "/", "hero", "visitor-1")
	trackEvent(t, r, "/", "hero", "visitor-2")
	trackEvent(t, r, "/", "services", "visitor-1")

	// An event outside the trailing week counts only toward the total
	old := models.AnalyticsEvent{
		Page:      "/",
		VisitorID: "visitor-3",
		Timestamp: time.Now().UTC().AddDate(0, 0, -10),
	}
	require.NoError(t, config.DB.Create(&old).Error)

	// Summary is admin-only
	w := doJSON(t, r, http.MethodGet, "/api/analytics/summary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/analytics/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decodeBody(t, w)
	assert.Equal(t, float64(4), summary["total_views"])
	assert.Equal(t, float64(3), summary["today_views"])
	assert.Equal(t, float64(3), summary["week_views"])
	assert.Equal(t, float64(3), summary["unique_visitors"])

	daily := summary["daily_views"].([]interface{})
	require.Len(t, daily, 7)
	today := daily[6].(map[string]interface{})
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), today["date"])
	assert.Equal(t, float64(3), today["views"])

	sections := summary["popular_sections"].([]interface{})
	require.Len(t, sections, 2)
	first := sections[0].(map[string]interface{})
	assert.Equal(t, "hero", first["section"])
	assert.Equal(t, float64(2), first["views"])
}
