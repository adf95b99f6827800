package main

import (
	"fmt"
	"log"
	"os"

	"beautybar-backend/config"
	"beautybar-backend/models"
	"beautybar-backend/routes"
	"beautybar-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Service{},
		&models.PriceCategory{},
		&models.Testimonial{},
		&models.Promotion{},
		&models.GalleryImage{},
		&models.HomeBooking{},
		&models.AnalyticsEvent{},
		&models.NotificationLog{},
	)
}

func main() {
	services.NewCleanupService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
