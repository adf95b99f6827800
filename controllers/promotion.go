// controllers/promotion.go
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

type CreatePromotionInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Discount    string `json:"discount" binding:"required"`
	Active      *bool  `json:"active"`
}

type UpdatePromotionInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Discount    *string `json:"discount"`
	Active      *bool   `json:"active"`
}

func GetPromotions(c *gin.Context) {
	var promotions []models.Promotion
	if err := config.DB.Order("created_at ASC").Find(&promotions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve promotions")
		return
	}

	c.JSON(http.StatusOK, promotions)
}

// GetActivePromotion returns the promotion currently shown on the public
// site, or null when none is active.
func GetActivePromotion(c *gin.Context) {
	var promotion models.Promotion
	err := config.DB.Where("active = ?", true).Order("updated_at DESC").First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve promotion")
		}
		return
	}

	c.JSON(http.StatusOK, promotion)
}

func CreatePromotion(c *gin.Context) {
	var input CreatePromotionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	// Only one promotion may be active at a time
	if active {
		if err := deactivatePromotions(uuid.Nil); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create promotion")
			return
		}
	}

	promotion := models.Promotion{
		Title:       input.Title,
		Description: input.Description,
		Discount:    input.Discount,
		Active:      active,
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create promotion")
		return
	}

	c.JSON(http.StatusCreated, promotion)
}

func UpdatePromotion(c *gin.Context) {
	promotionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid promotion ID format")
		return
	}

	var input UpdatePromotionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, "id = ?", promotionUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Promotion not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		promotion.Title = *input.Title
	}
	if input.Description != nil {
		promotion.Description = *input.Description
	}
	if input.Discount != nil {
		promotion.Discount = *input.Discount
	}
	if input.Active != nil {
		promotion.Active = *input.Active
		if *input.Active {
			if err := deactivatePromotions(promotion.ID); err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update promotion")
				return
			}
		}
	}

	if err := config.DB.Save(&promotion).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update promotion")
		return
	}

	c.JSON(http.StatusOK, promotion)
}

func DeletePromotion(c *gin.Context) {
	promotionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid promotion ID format")
		return
	}

	result := config.DB.Delete(&models.Promotion{}, "id = ?", promotionUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete promotion")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Promotion not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
}

func deactivatePromotions(except uuid.UUID) error {
	query := config.DB.Model(&models.Promotion{}).Where("active = ?", true)
	if except != uuid.Nil {
		query = query.Where("id <> ?", except)
	}
	return query.Update("active", false).Error
}
