package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Review struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	// UserID is nil for guest reviews; guest name/email are captured instead.
	UserID     *uuid.UUID `gorm:"index" json:"user_id"`
	GuestName  string     `gorm:"size:255" json:"guest_name"`
	GuestEmail string     `gorm:"size:255" json:"guest_email"`

	PackageID    uuid.UUID `gorm:"not null;index" json:"package_id"`
	PackageTitle string    `gorm:"size:255" json:"package_title"`

	Rating  int            `gorm:"not null" json:"rating"`
	Comment string         `gorm:"type:text" json:"comment"`
	Images  datatypes.JSON `gorm:"type:jsonb" json:"images"`

	// Reviews are created unapproved and only become publicly visible once
	// staff approve them.
	Approved bool `gorm:"default:false" json:"approved"`

	User *User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
