// services/cleanup_service.go
package services

import (
	"log"
	"time"

	"beautybar-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type CleanupService struct {
	db *gorm.DB
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{db: db}
}

func (s *CleanupService) StartScheduler() {
	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", s.PurgeStaleResetTokens)

	c.Start()
	log.Println("Cleanup scheduler started")
}

// PurgeStaleResetTokens removes password reset tokens that were already
// used or have passed their expiry.
func (s *CleanupService) PurgeStaleResetTokens() {
	result := s.db.Where("used = ? OR expires_at < ?", true, time.Now().UTC()).
		Delete(&models.PasswordReset{})
	if result.Error != nil {
		log.Printf("Failed to purge reset tokens: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d stale reset tokens", result.RowsAffected)
	}
}
