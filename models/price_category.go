package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceCategory struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Category    string     `gorm:"not null" json:"category"`
	Items       PriceItems `gorm:"type:jsonb;default:'[]'" json:"items"`
	ServiceType string     `gorm:"type:varchar(10);default:'salon'" json:"service_type"` // "salon" or "home"
	Order       int        `gorm:"column:order;not null" json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (p *PriceCategory) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}

type PriceItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Custom JSON column type for the per-category price list
type PriceItems []PriceItem

func (p PriceItems) Value() (driver.Value, error) {
	if p == nil {
		p = PriceItems{}
	}
	return json.Marshal(p)
}

func (p *PriceItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = PriceItems{}
		return nil
	default:
		return errors.New("unsupported type for PriceItems")
	}
}
