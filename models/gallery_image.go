package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Caption   string    `json:"caption"`
	Order     int       `gorm:"column:order;not null" json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) (err error) {
	g.ID = uuid.New()
	return
}
