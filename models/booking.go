package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type HomeBooking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Phone         string    `gorm:"not null" json:"phone"`
	Email         string    `json:"email"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Service       string    `gorm:"not null" json:"service"`
	PreferredDate string    `gorm:"not null" json:"preferred_date"`
	PreferredTime string    `gorm:"not null" json:"preferred_time"`
	Notes         string    `gorm:"type:text" json:"notes"`
	Status        string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	SMSSent       bool      `gorm:"default:false" json:"sms_sent"`
	CreatedAt     time.Time `json:"created_at"`
}

func (b *HomeBooking) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
