package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"

	InquiryPending   = "pending"
	InquiryResponded = "responded"
	InquiryClosed    = "closed"
)

// Transition tables. Completed and cancelled bookings are terminal; a closed
// inquiry may be reopened. A pending inquiry cannot be closed without being
// marked responded first.
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCompleted: {},
	BookingCancelled: {},
}

var inquiryTransitions = map[string][]string{
	InquiryPending:   {InquiryResponded},
	InquiryResponded: {InquiryClosed},
	InquiryClosed:    {InquiryPending},
}

func canMove(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionBooking reports whether from -> to is a legal booking edge.
func CanTransitionBooking(from, to string) bool {
	return canMove(bookingTransitions, from, to)
}

// CanTransitionInquiry reports whether from -> to is a legal inquiry edge.
func CanTransitionInquiry(from, to string) bool {
	return canMove(inquiryTransitions, from, to)
}

func ValidBookingStatus(s string) bool {
	_, ok := bookingTransitions[s]
	return ok
}

func ValidInquiryStatus(s string) bool {
	_, ok := inquiryTransitions[s]
	return ok
}

// TransitionBooking moves a booking along its transition table and persists
// the new status. Illegal edges are rejected, never coerced.
func TransitionBooking(id uuid.UUID, target string) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "booking", ID: id.String()}
		}
		return nil, &StoreUnavailableError{Op: "load booking", Err: err}
	}

	if !canMove(bookingTransitions, booking.Status, target) {
		return nil, &InvalidTransitionError{Entity: "booking", ID: id.String(), From: booking.Status, To: target}
	}

	booking.Status = target
	if err := database.DB.Model(&booking).Update("status", target).Error; err != nil {
		return nil, &StoreUnavailableError{Op: "update booking status", Err: err}
	}
	return &booking, nil
}

// TransitionInquiry moves an inquiry along its transition table, including the
// closed -> pending reopen edge.
func TransitionInquiry(id uuid.UUID, target string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := database.DB.First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "inquiry", ID: id.String()}
		}
		return nil, &StoreUnavailableError{Op: "load inquiry", Err: err}
	}

	if !canMove(inquiryTransitions, inquiry.Status, target) {
		return nil, &InvalidTransitionError{Entity: "inquiry", ID: id.String(), From: inquiry.Status, To: target}
	}

	inquiry.Status = target
	if err := database.DB.Model(&inquiry).Update("status", target).Error; err != nil {
		return nil, &StoreUnavailableError{Op: "update inquiry status", Err: err}
	}
	return &inquiry, nil
}

// SetReviewApproval toggles a review's approved flag in either direction.
func SetReviewApproval(id uuid.UUID, approved bool) (*models.Review, error) {
	var review models.Review
	if err := database.DB.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "review", ID: id.String()}
		}
		return nil, &StoreUnavailableError{Op: "load review", Err: err}
	}

	review.Approved = approved
	if err := database.DB.Model(&review).Update("approved", approved).Error; err != nil {
		return nil, &StoreUnavailableError{Op: "update review approval", Err: err}
	}
	return &review, nil
}

// ApplyTestimonialFlags updates a testimonial's moderation flags. Featuring a
// testimonial approves it, and withdrawing approval also unfeatures it, so a
// featured-but-hidden testimonial can never be produced through this path.
func ApplyTestimonialFlags(t *models.Testimonial, approved, featured *bool) {
	if approved != nil {
		t.Approved = *approved
		if !t.Approved {
			t.Featured = false
		}
	}
	if featured != nil {
		t.Featured = *featured
		if t.Featured {
			t.Approved = true
		}
	}
}

// SetTestimonialFlags loads a testimonial, applies the flag policy and
// persists the result.
func SetTestimonialFlags(id uuid.UUID, approved, featured *bool) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "testimonial", ID: id.String()}
		}
		return nil, &StoreUnavailableError{Op: "load testimonial", Err: err}
	}

	ApplyTestimonialFlags(&testimonial, approved, featured)
	if err := database.DB.Model(&testimonial).Updates(map[string]interface{}{
		"approved": testimonial.Approved,
		"featured": testimonial.Featured,
	}).Error; err != nil {
		return nil, &StoreUnavailableError{Op: "update testimonial flags", Err: err}
	}
	return &testimonial, nil
}
