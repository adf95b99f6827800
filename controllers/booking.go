// controllers/booking.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"beautybar-backend/config"
	"beautybar-backend/models"
	"beautybar-backend/services"
	"beautybar-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HomeBookingInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Notes         string `json:"notes"`
}

type BookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

// CreateHomeBooking takes a public home-service booking request. Date and
// time stay free-form strings; the salon confirms by phone, so the only
// server-side contract is that required fields are present.
func CreateHomeBooking(c *gin.Context) {
	var input HomeBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", input.Name},
		{"phone", input.Phone},
		{"address", input.Address},
		{"service", input.Service},
		{"preferred_date", input.PreferredDate},
		{"preferred_time", input.PreferredTime},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Missing required fields",
			"fields": missing,
		})
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	booking := models.HomeBooking{
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		Service:       input.Service,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Notes:         input.Notes,
		Status:        models.BookingStatusPending,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	// Confirmation SMS and admin alert are best-effort; the booking stands
	// whether or not they deliver.
	notifier := services.NewNotificationService(config.DB)
	message := fmt.Sprintf(
		"Hi %s! Your BeautyBar609 home service booking is received. Service: %s, Date: %s at %s. We'll confirm shortly. Call 08058578131 for queries.",
		booking.Name, booking.Service, booking.PreferredDate, booking.PreferredTime)
	smsSent := notifier.SendSMS(booking.Phone, "booking_received", message)
	if smsSent {
		config.DB.Model(&booking).Update("sms_sent", true)
		booking.SMSSent = true
	}
	notifier.SendBookingAlertEmail(booking, smsSent)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking request submitted successfully",
		"booking_id": booking.ID,
		"sms_sent":   smsSent,
	})
}

// GetBookings lists all booking requests for the admin dashboard, newest first
func GetBookings(c *gin.Context) {
	var bookings []models.HomeBooking
	if err := config.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func UpdateBookingStatus(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input BookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var booking models.HomeBooking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&booking).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	notifier := services.NewNotificationService(config.DB)
	switch input.Status {
	case models.BookingStatusConfirmed:
		message := fmt.Sprintf(
			"Hi %s! Great news! Your BeautyBar609 home service for %s on %s at %s is CONFIRMED. See you soon!",
			booking.Name, booking.Service, booking.PreferredDate, booking.PreferredTime)
		notifier.SendSMS(booking.Phone, "booking_confirmed", message)
	case models.BookingStatusCancelled:
		message := fmt.Sprintf(
			"Hi %s, your BeautyBar609 booking for %s has been cancelled. Please call 08058578131 to reschedule.",
			booking.Name, booking.PreferredDate)
		notifier.SendSMS(booking.Phone, "booking_cancelled", message)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated to " + input.Status})
}
