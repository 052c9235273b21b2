package services

import (
	"github.com/kiprono589/savanna_tours/models"
)

// ComputeTotal derives a booking total from the package's pricing mode.
//
// Fixed-price packages return unit price times participants. Custom-price
// packages return nil; the package's free-text price description is what the
// customer sees instead. Currency is carried through unmodified.
func ComputeTotal(pkg *models.Package, participants int) (*float64, error) {
	if participants < 1 {
		return nil, &ValidationError{Field: "participants", Reason: "must be at least 1"}
	}
	if pkg.MaxParticipants > 0 && participants > pkg.MaxParticipants {
		return nil, &ValidationError{Field: "participants", Reason: "exceeds the package maximum"}
	}

	switch pkg.PricingMode {
	case models.PricingModeFixed:
		if pkg.UnitPrice == nil || *pkg.UnitPrice <= 0 {
			return nil, &ValidationError{Field: "unit_price", Reason: "fixed-price package has no positive unit price"}
		}
		total := *pkg.UnitPrice * float64(participants)
		return &total, nil
	case models.PricingModeCustom:
		return nil, nil
	default:
		return nil, &ValidationError{Field: "pricing_mode", Reason: "unknown pricing mode " + pkg.PricingMode}
	}
}
