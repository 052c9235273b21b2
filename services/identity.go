package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// AuthIdentity is the contract yielded by the session layer for an
// authenticated request.
type AuthIdentity struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

// GuestContact is the contact snapshot a guest supplies with a submission.
type GuestContact struct {
	Name  string
	Email string
	Phone string
}

// Submitter is the one canonical shape every booking or review submission is
// normalized into, regardless of channel. UserID set and guest fields blank
// for authenticated users; the reverse for guests.
type Submitter struct {
	UserID *uuid.UUID
	Name   string
	Email  string
	Phone  string
}

// ResolveSubmitter normalizes a submission. When an authenticated identity is
// present the guest contact in the payload is ignored entirely, even if
// populated. When absent, guest name and email (and phone when needPhone) are
// required and validated.
func ResolveSubmitter(identity *AuthIdentity, guest GuestContact, needPhone bool) (Submitter, error) {
	if identity != nil {
		id := identity.ID
		return Submitter{UserID: &id}, nil
	}

	guest.Name = strings.TrimSpace(guest.Name)
	guest.Email = strings.TrimSpace(guest.Email)
	guest.Phone = strings.TrimSpace(guest.Phone)

	if guest.Name == "" {
		return Submitter{}, &ValidationError{Field: "name", Reason: "required for guest submissions"}
	}
	if guest.Email == "" {
		return Submitter{}, &ValidationError{Field: "email", Reason: "required for guest submissions"}
	}
	if err := validate.Var(guest.Email, "email"); err != nil {
		return Submitter{}, &ValidationError{Field: "email", Reason: "not a valid email address"}
	}
	if needPhone && guest.Phone == "" {
		return Submitter{}, &ValidationError{Field: "phone", Reason: "required for guest submissions"}
	}

	return Submitter{Name: guest.Name, Email: guest.Email, Phone: guest.Phone}, nil
}
