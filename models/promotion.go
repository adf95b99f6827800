package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Promotion struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Discount    string    `gorm:"not null" json:"discount"` // display label, e.g. "15% OFF"
	Active      bool      `gorm:"default:false;index" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Promotion) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
