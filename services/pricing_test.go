package services

import (
	"errors"
	"testing"

	"github.com/kiprono589/savanna_tours/models"
)

func fixedPackage(unitPrice float64, maxParticipants int) *models.Package {
	return &models.Package{
		PricingMode:     models.PricingModeFixed,
		UnitPrice:       &unitPrice,
		MaxParticipants: maxParticipants,
		Currency:        "USD",
	}
}

func TestComputeTotalFixedPricing(t *testing.T) {
	tests := []struct {
		name         string
		unitPrice    float64
		max          int
		participants int
		want         float64
	}{
		{name: "single participant", unitPrice: 1000, max: 6, participants: 1, want: 1000},
		{name: "spec example", unitPrice: 1000, max: 6, participants: 3, want: 3000},
		{name: "at the package maximum", unitPrice: 890, max: 8, participants: 8, want: 7120},
		{name: "no maximum configured", unitPrice: 250, max: 0, participants: 40, want: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ComputeTotal(fixedPackage(tt.unitPrice, tt.max), tt.participants)
			if err != nil {
				t.Fatalf("compute total: %v", err)
			}
			if total == nil {
				t.Fatal("expected a numeric total for fixed pricing")
			}
			if *total != tt.want {
				t.Fatalf("expected total %.2f, got %.2f", tt.want, *total)
			}
		})
	}
}

func TestComputeTotalCustomPricing(t *testing.T) {
	text := "Contact us for a tailored quote"
	pkg := &models.Package{
		PricingMode:     models.PricingModeCustom,
		PriceText:       &text,
		MaxParticipants: 12,
	}

	total, err := ComputeTotal(pkg, 4)
	if err != nil {
		t.Fatalf("compute total: %v", err)
	}
	if total != nil {
		t.Fatalf("expected nil total for custom pricing, got %.2f", *total)
	}
}

func TestComputeTotalValidation(t *testing.T) {
	zero := 0.0
	tests := []struct {
		name         string
		pkg          *models.Package
		participants int
	}{
		{name: "zero participants", pkg: fixedPackage(1000, 6), participants: 0},
		{name: "negative participants", pkg: fixedPackage(1000, 6), participants: -2},
		{name: "above package maximum not clamped", pkg: fixedPackage(1000, 6), participants: 7},
		{name: "missing unit price", pkg: &models.Package{PricingMode: models.PricingModeFixed, MaxParticipants: 6}, participants: 2},
		{name: "non-positive unit price", pkg: &models.Package{PricingMode: models.PricingModeFixed, UnitPrice: &zero, MaxParticipants: 6}, participants: 2},
		{name: "unknown pricing mode", pkg: &models.Package{PricingMode: "negotiable"}, participants: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ComputeTotal(tt.pkg, tt.participants)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if total != nil {
				t.Fatal("expected nil total on validation failure")
			}
		})
	}
}
