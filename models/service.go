package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"not null" json:"image"`
	Price       string    `gorm:"not null" json:"price"` // display label, e.g. "From ₦15,000"
	Order       int       `gorm:"column:order;not null" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
