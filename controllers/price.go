// controllers/price.go
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

type CreatePriceCategoryInput struct {
	Category    string            `json:"category" binding:"required"`
	Items       models.PriceItems `json:"items"`
	ServiceType string            `json:"service_type" binding:"omitempty,oneof=salon home"`
	Order       *int              `json:"order"`
}

type UpdatePriceCategoryInput struct {
	Category    *string            `json:"category"`
	Items       *models.PriceItems `json:"items"`
	ServiceType *string            `json:"service_type" binding:"omitempty,oneof=salon home"`
	Order       *int               `json:"order"`
}

// GetPrices lists price categories, optionally filtered by service_type.
// Rows predating the salon/home split carry no service_type and count as salon.
func GetPrices(c *gin.Context) {
	query := config.DB.Model(&models.PriceCategory{})

	switch serviceType := c.Query("service_type"); serviceType {
	case "":
	case "salon":
		query = query.Where("service_type = ? OR service_type = '' OR service_type IS NULL", "salon")
	default:
		query = query.Where("service_type = ?", serviceType)
	}

	var categories []models.PriceCategory
	if err := query.Order(`"order" ASC, created_at ASC`).Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve prices")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func CreatePriceCategory(c *gin.Context) {
	var input CreatePriceCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := models.PriceCategory{
		Category:    input.Category,
		Items:       input.Items,
		ServiceType: input.ServiceType,
	}
	if category.Items == nil {
		category.Items = models.PriceItems{}
	}
	if category.ServiceType == "" {
		category.ServiceType = "salon"
	}
	if input.Order != nil {
		category.Order = *input.Order
	} else {
		category.Order = nextOrder(&models.PriceCategory{})
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create price category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func UpdatePriceCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price category ID format")
		return
	}

	var input UpdatePriceCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var category models.PriceCategory
	if err := config.DB.First(&category, "id = ?", categoryUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Price category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Category != nil {
		category.Category = *input.Category
	}
	if input.Items != nil {
		category.Items = *input.Items
	}
	if input.ServiceType != nil {
		category.ServiceType = *input.ServiceType
	}
	if input.Order != nil {
		category.Order = *input.Order
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update price category")
		return
	}

	c.JSON(http.StatusOK, category)
}

func DeletePriceCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price category ID format")
		return
	}

	result := config.DB.Delete(&models.PriceCategory{}, "id = ?", categoryUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete price category")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Price category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price category deleted"})
}
