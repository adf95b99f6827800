package routes

import (
	"os"
	"strings"
	"time"

	"beautybar-backend/config"
	"beautybar-backend/controllers"
	"beautybar-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "BeautyBar609 API"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/forgot-password", utils.RateLimit(3, time.Minute), controllers.ForgotPassword)
			auth.POST("/reset-password", controllers.ResetPassword)
			auth.GET("/me", utils.AuthMiddleware(), controllers.Me)
		}

		// Public reads for the marketing site
		api.GET("/services", controllers.GetServices)
		api.GET("/prices", controllers.GetPrices)
		api.GET("/testimonials", controllers.GetTestimonials)
		api.GET("/promotions", controllers.GetPromotions)
		api.GET("/promotions/active", controllers.GetActivePromotion)
		api.GET("/gallery", controllers.GetGallery)

		// Public intake
		api.POST("/bookings/home", controllers.CreateHomeBooking)
		api.POST("/analytics/track", controllers.TrackEvent)

		// Admin surface
		admin := api.Group("", utils.AuthMiddleware())
		{
			admin.POST("/services", controllers.CreateService)
			admin.PUT("/services/:id", controllers.UpdateService)
			admin.DELETE("/services/:id", controllers.DeleteService)

			admin.POST("/prices", controllers.CreatePriceCategory)
			admin.PUT("/prices/:id", controllers.UpdatePriceCategory)
			admin.DELETE("/prices/:id", controllers.DeletePriceCategory)

			admin.POST("/testimonials", controllers.CreateTestimonial)
			admin.PUT("/testimonials/:id", controllers.UpdateTestimonial)
			admin.DELETE("/testimonials/:id", controllers.DeleteTestimonial)

			admin.POST("/promotions", controllers.CreatePromotion)
			admin.PUT("/promotions/:id", controllers.UpdatePromotion)
			admin.DELETE("/promotions/:id", controllers.DeletePromotion)

			admin.POST("/gallery", controllers.CreateGalleryImage)
			admin.POST("/gallery/upload", controllers.UploadGalleryImage)
			admin.PUT("/gallery/:id", controllers.UpdateGalleryImage)
			admin.DELETE("/gallery/:id", controllers.DeleteGalleryImage)

			admin.GET("/bookings", controllers.GetBookings)
			admin.PUT("/bookings/:id/status", controllers.UpdateBookingStatus)

			admin.GET("/analytics/summary", controllers.GetAnalyticsSummary)

			admin.POST("/seed", controllers.SeedData)
		}
	}

	return r
}
