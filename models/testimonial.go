package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Rating    int       `gorm:"not null;default:5" json:"rating"` // 1-5
	CreatedAt time.Time `json:"created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	t.ID = uuid.New()
	return
}
