package services

import (
	"strings"
	"testing"

	"github.com/kiprono589/savanna_tours/models"
)

func TestBookingTransitionTable(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},

		// pending cannot skip straight to completed
		{BookingPending, BookingCompleted, false},

		// terminal states have no outgoing edges
		{BookingCompleted, BookingPending, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingCancelled, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingCompleted, false},

		// self transitions are not edges
		{BookingPending, BookingPending, false},
		{BookingConfirmed, BookingConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			if got := CanTransitionBooking(tt.from, tt.to); got != tt.allowed {
				t.Fatalf("CanTransitionBooking(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestInquiryTransitionTable(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{InquiryPending, InquiryResponded, true},
		{InquiryResponded, InquiryClosed, true},

		// reopen is the single backward edge
		{InquiryClosed, InquiryPending, true},

		// an inquiry must be responded to before it can be closed
		{InquiryPending, InquiryClosed, false},
		{InquiryResponded, InquiryPending, false},
		{InquiryClosed, InquiryResponded, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			if got := CanTransitionInquiry(tt.from, tt.to); got != tt.allowed {
				t.Fatalf("CanTransitionInquiry(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestValidStatuses(t *testing.T) {
	for _, status := range []string{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
		if !ValidBookingStatus(status) {
			t.Fatalf("expected %q to be a valid booking status", status)
		}
	}
	if ValidBookingStatus("reschedule_requested") {
		t.Fatal("unexpected booking status accepted")
	}

	for _, status := range []string{InquiryPending, InquiryResponded, InquiryClosed} {
		if !ValidInquiryStatus(status) {
			t.Fatalf("expected %q to be a valid inquiry status", status)
		}
	}
	if ValidInquiryStatus("archived") {
		t.Fatal("unexpected inquiry status accepted")
	}
}

func TestInvalidTransitionErrorIdentifiesEdge(t *testing.T) {
	err := &InvalidTransitionError{Entity: "booking", ID: "abc-123", From: BookingPending, To: BookingCompleted}

	msg := err.Error()
	for _, part := range []string{"booking", "abc-123", BookingPending, BookingCompleted} {
		if !strings.Contains(msg, part) {
			t.Fatalf("expected error message to contain %q, got %q", part, msg)
		}
	}
}

func TestApplyTestimonialFlags(t *testing.T) {
	tests := []struct {
		name         string
		start        models.Testimonial
		approved     *bool
		featured     *bool
		wantApproved bool
		wantFeatured bool
	}{
		{
			name:         "approve only",
			start:        models.Testimonial{},
			approved:     boolPtr(true),
			wantApproved: true,
		},
		{
			name:         "featuring forces approval",
			start:        models.Testimonial{},
			featured:     boolPtr(true),
			wantApproved: true,
			wantFeatured: true,
		},
		{
			name:         "unapproving clears featured",
			start:        models.Testimonial{Approved: true, Featured: true},
			approved:     boolPtr(false),
			wantApproved: false,
			wantFeatured: false,
		},
		{
			name:         "unfeaturing keeps approval",
			start:        models.Testimonial{Approved: true, Featured: true},
			featured:     boolPtr(false),
			wantApproved: true,
			wantFeatured: false,
		},
		{
			name:         "both flags in one call",
			start:        models.Testimonial{},
			approved:     boolPtr(true),
			featured:     boolPtr(true),
			wantApproved: true,
			wantFeatured: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testimonial := tt.start
			ApplyTestimonialFlags(&testimonial, tt.approved, tt.featured)

			if testimonial.Approved != tt.wantApproved {
				t.Fatalf("approved = %v, want %v", testimonial.Approved, tt.wantApproved)
			}
			if testimonial.Featured != tt.wantFeatured {
				t.Fatalf("featured = %v, want %v", testimonial.Featured, tt.wantFeatured)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }
