package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records every outbound SMS/email attempt.
type NotificationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // sms, email
	Kind         string    `gorm:"type:varchar(30)" json:"kind"`    // booking_received, booking_confirmed, booking_cancelled, password_reset, booking_alert
	Recipient    string    `json:"recipient"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed, skipped
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	SentAt       time.Time `json:"sentAt"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}
