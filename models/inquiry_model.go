package models

import (
	"time"

	"github.com/google/uuid"
)

type Inquiry struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name  string    `gorm:"size:255;not null" json:"name"`
	Email string    `gorm:"size:255;not null;index" json:"email"`
	Phone *string   `gorm:"size:50" json:"phone"`

	PackageID     *uuid.UUID `json:"package_id"`
	Message       string     `gorm:"type:text;not null" json:"message"`
	PreferredDate *time.Time `json:"preferred_date"`
	Participants  *int       `json:"participants"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
