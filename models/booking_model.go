package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference string    `gorm:"size:12;not null;unique" json:"reference"`

	// UserID is nil for guest bookings; the guest contact snapshot below is
	// populated instead. Exactly one of the two shapes is ever present.
	UserID     *uuid.UUID `gorm:"index" json:"user_id"`
	GuestName  string     `gorm:"size:255" json:"guest_name"`
	GuestEmail string     `gorm:"size:255" json:"guest_email"`
	GuestPhone string     `gorm:"size:50" json:"guest_phone"`

	// Package title and image are denormalized at submission time so the
	// booking survives later package edits or deletion.
	PackageID    *uuid.UUID `gorm:"index" json:"package_id"`
	PackageTitle string     `gorm:"size:255" json:"package_title"`
	PackageImage *string    `gorm:"size:255" json:"package_image"`

	TravelDate   time.Time `gorm:"not null" json:"travel_date"`
	Participants int       `gorm:"not null" json:"participants"`

	// TotalAmount is computed once at creation for fixed-price packages and
	// never recomputed. Custom-price packages leave it nil.
	TotalAmount *float64 `gorm:"type:numeric(10,2)" json:"total_amount"`
	Currency    string   `gorm:"size:3" json:"currency"`

	SpecialRequests string  `gorm:"type:text" json:"special_requests"`
	Status          string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	VoucherURL      *string `gorm:"size:255" json:"voucher_url"`

	User *User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
