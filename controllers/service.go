// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"beautybar-backend/config"
	"beautybar-backend/models"
	"beautybar-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Order       *int   `json:"order"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Price       *string `json:"price"`
	Order       *int    `json:"order"`
}

// GetServices retrieves all services, lowest display rank first
func GetServices(c *gin.Context) {
	var svcs []models.Service
	if err := config.DB.Order(`"order" ASC, created_at ASC`).Find(&svcs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, svcs)
}

// CreateService creates a new service card
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := models.Service{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Price:       input.Price,
	}
	if input.Order != nil {
		svc.Order = *input.Order
	} else {
		svc.Order = nextOrder(&models.Service{})
	}

	if err := config.DB.Create(&svc).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// UpdateService applies a partial update to an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var svc models.Service
	if err := config.DB.First(&svc, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		svc.Title = *input.Title
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Image != nil {
		svc.Image = *input.Image
	}
	if input.Price != nil {
		svc.Price = *input.Price
	}
	if input.Order != nil {
		svc.Order = *input.Order
	}

	if err := config.DB.Save(&svc).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// DeleteService removes a service
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", serviceUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
