package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestResolveSubmitterAuthenticated(t *testing.T) {
	userID := uuid.New()
	identity := &AuthIdentity{ID: userID, Email: "jane@example.com", Name: "Jane", Role: "user"}

	// Guest fields in the payload are ignored when an identity is present.
	submitter, err := ResolveSubmitter(identity, GuestContact{
		Name:  "Someone Else",
		Email: "other@example.com",
		Phone: "555",
	}, true)
	if err != nil {
		t.Fatalf("resolve submitter: %v", err)
	}

	if submitter.UserID == nil || *submitter.UserID != userID {
		t.Fatalf("expected user id %s, got %v", userID, submitter.UserID)
	}
	if submitter.Name != "" || submitter.Email != "" || submitter.Phone != "" {
		t.Fatalf("expected empty guest fields for authenticated submitter, got %+v", submitter)
	}
}

func TestResolveSubmitterGuest(t *testing.T) {
	submitter, err := ResolveSubmitter(nil, GuestContact{
		Name:  "  A  ",
		Email: " a@x.com ",
		Phone: " 555 ",
	}, true)
	if err != nil {
		t.Fatalf("resolve submitter: %v", err)
	}

	if submitter.UserID != nil {
		t.Fatalf("expected nil user id for guest, got %v", submitter.UserID)
	}
	if submitter.Name != "A" || submitter.Email != "a@x.com" || submitter.Phone != "555" {
		t.Fatalf("expected trimmed guest contact, got %+v", submitter)
	}
}

func TestResolveSubmitterGuestValidation(t *testing.T) {
	tests := []struct {
		name      string
		guest     GuestContact
		needPhone bool
	}{
		{name: "missing name", guest: GuestContact{Email: "a@x.com", Phone: "555"}, needPhone: true},
		{name: "missing email", guest: GuestContact{Name: "A", Phone: "555"}, needPhone: true},
		{name: "implausible email", guest: GuestContact{Name: "A", Email: "not-an-email", Phone: "555"}, needPhone: true},
		{name: "missing phone when required", guest: GuestContact{Name: "A", Email: "a@x.com"}, needPhone: true},
		{name: "whitespace only name", guest: GuestContact{Name: "   ", Email: "a@x.com"}, needPhone: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSubmitter(nil, tt.guest, tt.needPhone)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestResolveSubmitterGuestPhoneOptional(t *testing.T) {
	submitter, err := ResolveSubmitter(nil, GuestContact{Name: "A", Email: "a@x.com"}, false)
	if err != nil {
		t.Fatalf("resolve submitter: %v", err)
	}
	if submitter.Phone != "" {
		t.Fatalf("expected empty phone, got %q", submitter.Phone)
	}
}
