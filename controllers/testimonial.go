// controllers/testimonial.go
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

type CreateTestimonialInput struct {
	Name   string `json:"name" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Rating *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type UpdateTestimonialInput struct {
	Name   *string `json:"name"`
	Text   *string `json:"text"`
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

func GetTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := config.DB.Order("created_at ASC").Find(&testimonials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func CreateTestimonial(c *gin.Context) {
	var input CreateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	testimonial := models.Testimonial{
		Name:   input.Name,
		Text:   input.Text,
		Rating: 5,
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}

	if err := config.DB.Create(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

func UpdateTestimonial(c *gin.Context) {
	testimonialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	var input UpdateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var testimonial models.Testimonial
	if err := config.DB.First(&testimonial, "id = ?", testimonialUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		testimonial.Name = *input.Name
	}
	if input.Text != nil {
		testimonial.Text = *input.Text
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}

	if err := config.DB.Save(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

func DeleteTestimonial(c *gin.Context) {
	testimonialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	result := config.DB.Delete(&models.Testimonial{}, "id = ?", testimonialUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}
