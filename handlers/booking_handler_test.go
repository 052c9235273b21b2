package handlers

import (
	"strings"
	"testing"

	"github.com/kiprono589/savanna_tours/services"
)

func TestVoucherEligible(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{services.BookingPending, false},
		{services.BookingConfirmed, true},
		{services.BookingCompleted, true},
		{services.BookingCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := voucherEligible(tt.status); got != tt.want {
				t.Fatalf("voucherEligible(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestVoucherEligibilityMessageNamesBothStates(t *testing.T) {
	for _, state := range []string{services.BookingConfirmed, services.BookingCompleted} {
		if !strings.Contains(voucherEligibilityMessage, state) {
			t.Fatalf("message %q does not mention %q", voucherEligibilityMessage, state)
		}
	}
}
