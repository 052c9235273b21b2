package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is site-wide feedback, not linked to a package. Approved gates
// public display; Featured promotes a testimonial to the landing sections.
type Testimonial struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null" json:"email"`
	Rating   int       `gorm:"not null" json:"rating"`
	Comment  string    `gorm:"type:text" json:"comment"`
	ImageURL *string   `gorm:"size:255" json:"image_url"`

	Approved bool `gorm:"default:false" json:"approved"`
	Featured bool `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
