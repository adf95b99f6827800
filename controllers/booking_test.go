package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeBooking() gin.H {
	return gin.H{
		"name":           "Amaka O.",
		"phone":          "08058578131",
		"address":        "57, Arowolo Street, Abule Egba",
		"service":        "Microblading",
		"preferred_date": "2026-09-05",
		"preferred_time": "10:00",
	}
}

func TestBookingMissingFieldsAreNamed(t *testing.T) {
	r := newTestRouter(t)

	payload := completeBooking()
	delete(payload, "address")

	w := doJSON(t, r, http.MethodPost, "/api/bookings/home", "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	fields := body["fields"].([]interface{})
	assert.Contains(t, fields, "address")
	assert.Len(t, fields, 1)
}

func TestBookingAllMissingFieldsListed(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/home", "", gin.H{"notes": "just notes"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	fields := decodeBody(t, w)["fields"].([]interface{})
	assert.Len(t, fields, 6)
}

func TestBookingSubmitAndAdminList(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/home", "", completeBooking())
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["booking_id"])
	// Twilio is not configured in tests, so no SMS goes out
	assert.Equal(t, false, body["sms_sent"])

	time.Sleep(10 * time.Millisecond) // distinct created_at for ordering

	second := completeBooking()
	second["name"] = "Blessing A."
	w = doJSON(t, r, http.MethodPost, "/api/bookings/home", "", second)
	require.Equal(t, http.StatusCreated, w.Code)

	// Listing requires auth
	w = doJSON(t, r, http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := registerAdmin(t, r)
	w = doJSON(t, r, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 2)
	// Most recent first
	assert.Equal(t, "Blessing A.", list[0]["name"])
	assert.Equal(t, "pending", list[0]["status"])
}

func TestBookingInvalidPhone(t *testing.T) {
	r := newTestRouter(t)

	payload := completeBooking()
	payload["phone"] = "call me maybe"

	w := doJSON(t, r, http.MethodPost, "/api/bookings/home", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingStatusUpdate(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/home", "", completeBooking())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["booking_id"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+id+"/status", token, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings", token, nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "confirmed", list[0]["status"])

	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+id+"/status", token, gin.H{"status": "no-show"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+uuid.NewString()+"/status", token, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
