package models

import (
	"time"

	"github.com/google/uuid"
)

type Destination struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null;unique" json:"name"`
	Region      string    `gorm:"size:255" json:"region"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	Featured    bool      `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
