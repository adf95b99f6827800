// controllers/seed.go
package controllers

import (
	"net/http"

	"beautybar-backend/config"
	"beautybar-backend/models"
	"beautybar-backend/utils"

	"github.com/gin-gonic/gin"
)

// SeedData inserts the default site content into any collection that is
// still empty. Safe to call repeatedly.
func SeedData(c *gin.Context) {
	var count int64

	config.DB.Model(&models.Service{}).Count(&count)
	if count == 0 {
		seedServices := []models.Service{
			{Title: "Nails Extensions", Description: "Custom nail art and extensions that make a statement", Image: "https://images.unsplash.com/photo-1750598243589-1cc3770356b8?q=85&w=800&auto=format&fit=crop", Price: "From ₦15,000", Order: 0},
			{Title: "Lashes Extensions", Description: "Volume and classic lashes for that perfect flutter", Image: "https://images.unsplash.com/photo-1672334115165-f82b6b5e8bee?q=85&w=800&auto=format&fit=crop", Price: "From ₦20,000", Order: 1},
			{Title: "Brow Tinting & Lamination", Description: "Perfectly sculpted brows that frame your face", Image: "https://images.unsplash.com/photo-1755274556662-d37485f0677d?q=85&w=800&auto=format&fit=crop", Price: "From ₦12,000", Order: 2},
			{Title: "Microblading", Description: "Semi-permanent brows with natural hair-stroke technique", Image: "https://images.unsplash.com/photo-1755223738688-be7501b937d2?q=85&w=800&auto=format&fit=crop", Price: "From ₦80,000", Order: 3},
		}
		if err := config.DB.Create(&seedServices).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed services")
			return
		}
	}

	config.DB.Model(&models.PriceCategory{}).Count(&count)
	if count == 0 {
		seedPrices := []models.PriceCategory{
			{Category: "NAILS", ServiceType: "salon", Order: 0, Items: models.PriceItems{
				{Name: "Gel Extensions (Short)", Price: "₦15,000"},
				{Name: "Gel Extensions (Medium)", Price: "₦18,000"},
				{Name: "Gel Extensions (Long)", Price: "₦22,000"},
				{Name: "Acrylic Full Set", Price: "₦25,000"},
				{Name: "Nail Art (per nail)", Price: "₦500"},
				{Name: "Gel Polish Only", Price: "₦8,000"},
			}},
			{Category: "LASHES", ServiceType: "salon", Order: 1, Items: models.PriceItems{
				{Name: "Classic Lashes", Price: "₦20,000"},
				{Name: "Volume Lashes", Price: "₦25,000"},
				{Name: "Mega Volume", Price: "₦30,000"},
				{Name: "Lash Lift & Tint", Price: "₦15,000"},
				{Name: "Lash Removal", Price: "₦3,000"},
			}},
			{Category: "BROWS & BEAUTY", ServiceType: "salon", Order: 2, Items: models.PriceItems{
				{Name: "Brow Lamination", Price: "₦12,000"},
				{Name: "Brow Tint", Price: "₦5,000"},
				{Name: "Microblading", Price: "₦80,000"},
				{Name: "Microshading", Price: "₦85,000"},
				{Name: "Semi-Permanent Tattoo", Price: "From ₦30,000"},
			}},
			// Home service prices include the transport fee
			{Category: "NAILS", ServiceType: "home", Order: 0, Items: models.PriceItems{
				{Name: "Gel Extensions (Short)", Price: "₦22,000"},
				{Name: "Gel Extensions (Medium)", Price: "₦25,000"},
				{Name: "Gel Extensions (Long)", Price: "₦29,000"},
				{Name: "Acrylic Full Set", Price: "₦32,000"},
				{Name: "Nail Art (per nail)", Price: "₦500"},
				{Name: "Gel Polish Only", Price: "₦15,000"},
			}},
			{Category: "LASHES", ServiceType: "home", Order: 1, Items: models.PriceItems{
				{Name: "Classic Lashes", Price: "₦27,000"},
				{Name: "Volume Lashes", Price: "₦32,000"},
				{Name: "Mega Volume", Price: "₦37,000"},
				{Name: "Lash Lift & Tint", Price: "₦22,000"},
				{Name: "Lash Removal", Price: "₦5,000"},
			}},
			{Category: "BROWS & BEAUTY", ServiceType: "home", Order: 2, Items: models.PriceItems{
				{Name: "Brow Lamination", Price: "₦19,000"},
				{Name: "Brow Tint", Price: "₦10,000"},
				{Name: "Microblading", Price: "₦90,000"},
				{Name: "Microshading", Price: "₦95,000"},
				{Name: "Semi-Permanent Tattoo", Price: "From ₦40,000"},
			}},
		}
		if err := config.DB.Create(&seedPrices).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed prices")
			return
		}
	}

	config.DB.Model(&models.Testimonial{}).Count(&count)
	if count == 0 {
		seedTestimonials := []models.Testimonial{
			{Name: "Amaka O.", Text: "Absolutely love my nails! The attention to detail is amazing. Will definitely be back!", Rating: 5},
			{Name: "Blessing A.", Text: "Best lash extensions in Lagos! They last so long and look so natural.", Rating: 5},
			{Name: "Chidinma E.", Text: "My brows have never looked better. The microblading is life-changing!", Rating: 5},
			{Name: "Damilola F.", Text: "Professional service, beautiful results. BeautyBar609 is my new go-to!", Rating: 5},
			{Name: "Favour N.", Text: "The salon is so clean and the staff are so friendly. Highly recommend!", Rating: 5},
		}
		if err := config.DB.Create(&seedTestimonials).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed testimonials")
			return
		}
	}

	config.DB.Model(&models.Promotion{}).Count(&count)
	if count == 0 {
		promotion := models.Promotion{
			Title:       "Special Offer",
			Description: "Book a full set of nails and lashes together and get your total service discount. Valid for first-time clients!",
			Discount:    "15% OFF",
			Active:      true,
		}
		if err := config.DB.Create(&promotion).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed promotions")
			return
		}
	}

	config.DB.Model(&models.GalleryImage{}).Count(&count)
	if count == 0 {
		seedGallery := []models.GalleryImage{
			{URL: "https://images.unsplash.com/photo-1594461287652-10b41090cf91?q=85&w=600&auto=format&fit=crop", Caption: "Nail Art", Order: 0},
			{URL: "https://images.unsplash.com/photo-1516691475576-56cf13710ae9?q=85&w=600&auto=format&fit=crop", Caption: "Lash Extensions", Order: 1},
			{URL: "https://images.unsplash.com/photo-1755274556345-949613163335?q=85&w=600&auto=format&fit=crop", Caption: "Brow Work", Order: 2},
			{URL: "https://images.unsplash.com/photo-1750598243589-1cc3770356b8?q=85&w=600&auto=format&fit=crop", Caption: "Gel Nails", Order: 3},
			{URL: "https://images.unsplash.com/photo-1740484674184-77a7629506a5?q=85&w=600&auto=format&fit=crop", Caption: "Beauty Work", Order: 4},
			{URL: "https://images.unsplash.com/photo-1672334115165-f82b6b5e8bee?q=85&w=600&auto=format&fit=crop", Caption: "Lashes", Order: 5},
		}
		if err := config.DB.Create(&seedGallery).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed gallery")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data seeded successfully"})
}
