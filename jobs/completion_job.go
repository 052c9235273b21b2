package jobs

import (
	"log"
	"time"

	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/services"
)

// CompleteFinishedSafaris moves confirmed bookings whose trip has ended
// through the confirmed -> completed edge. The grace day covers trips whose
// package no longer exists to supply a duration.
func CompleteFinishedSafaris() {
	log.Println("Running job: CompleteFinishedSafaris...")

	var candidates []models.Booking
	err := database.DB.
		Where("status = ? AND travel_date < ?", services.BookingConfirmed, time.Now()).
		Find(&candidates).Error
	if err != nil {
		log.Printf("Error loading confirmed bookings: %v", err)
		return
	}

	now := time.Now()
	for _, booking := range candidates {
		durationDays := 1
		if booking.PackageID != nil {
			var pkg models.Package
			if err := database.DB.First(&pkg, "id = ?", *booking.PackageID).Error; err == nil {
				durationDays = pkg.DurationDays
			}
		}

		tripEnd := booking.TravelDate.AddDate(0, 0, durationDays)
		if tripEnd.Add(24 * time.Hour).After(now) {
			continue
		}

		if _, err := services.TransitionBooking(booking.ID, services.BookingCompleted); err != nil {
			log.Printf("Could not complete booking %s: %v", booking.Reference, err)
			continue
		}
		log.Printf("Booking %s marked completed", booking.Reference)
	}
}
