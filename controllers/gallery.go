// controllers/gallery.go
package controllers

import (
	"errors"
	"io"
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

type CreateGalleryImageInput struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
	Order   *int   `json:"order"`
}

type UpdateGalleryImageInput struct {
	URL     *string `json:"url"`
	Caption *string `json:"caption"`
	Order   *int    `json:"order"`
}

const maxUploadBytes = 10 << 20 // 10 MB

func GetGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := config.DB.Order(`"order" ASC, created_at ASC`).Find(&images).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery")
		return
	}

	c.JSON(http.StatusOK, images)
}

// CreateGalleryImage registers an image already hosted elsewhere
func CreateGalleryImage(c *gin.Context) {
	var input CreateGalleryImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	image := models.GalleryImage{
		URL:     input.URL,
		Caption: input.Caption,
	}
	if input.Order != nil {
		image.Order = *input.Order
	} else {
		image.Order = nextOrder(&models.GalleryImage{})
	}

	if err := config.DB.Create(&image).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create gallery image")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// UploadGalleryImage accepts a multipart image, stores it via the media
// service and appends the resulting record to the gallery. Non-image
// payloads are rejected by content sniffing regardless of the declared type.
func UploadGalleryImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file provided")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.RespondWithError(c, http.StatusBadRequest, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondWithError(c, http.StatusUnsupportedMediaType, "Only image uploads are allowed")
		return
	}

	url, err := services.UploadImage(c.Request.Context(), data, contentType)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	image := models.GalleryImage{
		URL:     url,
		Caption: fileHeader.Filename,
		Order:   nextOrder(&models.GalleryImage{}),
	}
	if err := config.DB.Create(&image).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create gallery image")
		return
	}

	c.JSON(http.StatusCreated, image)
}

func UpdateGalleryImage(c *gin.Context) {
	imageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image ID format")
		return
	}

	var input UpdateGalleryImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var image models.GalleryImage
	if err := config.DB.First(&image, "id = ?", imageUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Image not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.URL != nil {
		image.URL = *input.URL
	}
	if input.Caption != nil {
		image.Caption = *input.Caption
	}
	if input.Order != nil {
		image.Order = *input.Order
	}

	if err := config.DB.Save(&image).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update gallery image")
		return
	}

	c.JSON(http.StatusOK, image)
}

func DeleteGalleryImage(c *gin.Context) {
	imageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image ID format")
		return
	}

	result := config.DB.Delete(&models.GalleryImage{}, "id = ?", imageUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete gallery image")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Image not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
