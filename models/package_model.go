package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PricingModeFixed  = "fixed"
	PricingModeCustom = "custom"
)

type Package struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string     `gorm:"size:255;not null;unique" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	DestinationID   *uuid.UUID `json:"destination_id"`
	DurationDays    int        `gorm:"not null;default:1" json:"duration_days"`
	MaxParticipants int        `gorm:"not null;default:0" json:"max_participants"`

	// PricingMode selects between a numeric unit price ("fixed") and a
	// free-text price description ("custom"). UnitPrice is set iff fixed,
	// PriceText iff custom.
	PricingMode string   `gorm:"size:10;not null;default:'fixed'" json:"pricing_mode"`
	UnitPrice   *float64 `gorm:"type:numeric(10,2)" json:"unit_price"`
	PriceText   *string  `gorm:"size:255" json:"price_text"`
	Currency    string   `gorm:"size:3;not null;default:'USD'" json:"currency"`

	Included   datatypes.JSON `gorm:"type:jsonb" json:"included"`
	Excluded   datatypes.JSON `gorm:"type:jsonb" json:"excluded"`
	Itinerary  datatypes.JSON `gorm:"type:jsonb" json:"itinerary"`
	Activities datatypes.JSON `gorm:"type:jsonb" json:"activities"`

	ImageURL  *string `gorm:"size:255" json:"image_url"`
	Featured  bool    `gorm:"default:false" json:"featured"`
	ViewCount int     `gorm:"default:0" json:"view_count"`

	Destination *Destination `gorm:"foreignkey:DestinationID" json:"destination,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
