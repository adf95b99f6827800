package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivePromotionNullWhenNoneActive(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/promotions/active", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestOnlyOnePromotionActive(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/promotions", token, gin.H{
		"title": "Opening Offer", "discount": "10% OFF",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	firstID := decodeBody(t, w)["id"].(string)

	// Creating a second active promotion deactivates the first
	w = doJSON(t, r, http.MethodPost, "/api/promotions", token, gin.H{
		"title": "Holiday Special", "discount": "15% OFF",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/promotions/active", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Holiday Special", decodeBody(t, w)["title"])

	w = doJSON(t, r, http.MethodGet, "/api/promotions", "", nil)
	list := decodeList(t, w)
	require.Len(t, list, 2)
	activeCount := 0
	for _, p := range list {
		if p["active"].(bool) {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)

	// Reactivating the first flips the active promotion back
	w = doJSON(t, r, http.MethodPut, "/api/promotions/"+firstID, token, gin.H{"active": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/promotions/active", "", nil)
	assert.Equal(t, "Opening Offer", decodeBody(t, w)["title"])
}

func TestInactivePromotionCreateLeavesActiveAlone(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/promotions", token, gin.H{
		"title": "Current", "discount": "15% OFF",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	inactive := false
	w = doJSON(t, r, http.MethodPost, "/api/promotions", token, gin.H{
		"title": "Draft", "discount": "20% OFF", "active": inactive,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/promotions/active", "", nil)
	assert.Equal(t, "Current", decodeBody(t, w)["title"])
}
