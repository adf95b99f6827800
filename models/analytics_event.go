package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsEvent is append-only; rows are never updated after insert.
type AnalyticsEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Page      string    `gorm:"not null" json:"page"`
	Section   string    `gorm:"index" json:"section"`
	VisitorID string    `gorm:"index;not null" json:"visitor_id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = uuid.New()
	return
}
