package controllers_test

import (
	"net/http"
	"testing"

	"beautybar-backend/config"
	"beautybar-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceServiceTypeFilter(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/prices", token, gin.H{
		"category": "NAILS", "service_type": "salon",
		"items": []gin.H{{"name": "Gel Polish Only", "price": "₦8,000"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/prices", token, gin.H{
		"category": "NAILS", "service_type": "home",
		"items": []gin.H{{"name": "Gel Polish Only", "price": "₦15,000"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Row predating the salon/home split: no service_type at all
	legacy := models.PriceCategory{Category: "LEGACY", Items: models.PriceItems{}, Order: 5}
	require.NoError(t, config.DB.Create(&legacy).Error)
	require.NoError(t, config.DB.Model(&legacy).Update("service_type", "").Error)

	w = doJSON(t, r, http.MethodGet, "/api/prices?service_type=salon", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	salon := decodeList(t, w)
	require.Len(t, salon, 2)
	assert.Equal(t, "NAILS", salon[0]["category"])
	assert.Equal(t, "LEGACY", salon[1]["category"])

	w = doJSON(t, r, http.MethodGet, "/api/prices?service_type=home", "", nil)
	home := decodeList(t, w)
	require.Len(t, home, 1)
	assert.Equal(t, "home", home[0]["service_type"])

	w = doJSON(t, r, http.MethodGet, "/api/prices", "", nil)
	assert.Len(t, decodeList(t, w), 3)
}

func TestPriceItemsRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/prices", token, gin.H{
		"category": "LASHES",
		"items": []gin.H{
			{"name": "Classic Lashes", "price": "₦20,000"},
			{"name": "Volume Lashes", "price": "₦25,000"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/prices", "", nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	items := list[0]["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Classic Lashes", first["name"])
	assert.Equal(t, "₦20,000", first["price"])

	// Update only the item list; category stays
	w = doJSON(t, r, http.MethodPut, "/api/prices/"+id, token, gin.H{
		"items": []gin.H{{"name": "Mega Volume", "price": "₦30,000"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "LASHES", updated["category"])
	assert.Len(t, updated["items"].([]interface{}), 1)
}

func TestPriceEmptyItemsAllowed(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/prices", token, gin.H{"category": "NEW"})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "salon", body["service_type"])
	assert.Len(t, body["items"].([]interface{}), 0)
}
