package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/handlers"
	"github.com/kiprono589/savanna_tours/middleware"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/packages", handlers.ListPackages)
	api.Get("/packages/:packageId", handlers.GetPackage)
	api.Get("/packages/:packageId/reviews", handlers.GetPackageReviews)
	api.Get("/destinations", handlers.ListDestinations)
	api.Get("/settings", handlers.GetSettings)

	api.Post("/inquiries", handlers.CreateInquiry)
	api.Post("/testimonials", handlers.CreateTestimonial)
	api.Get("/testimonials", handlers.GetTestimonials)

	// Bookings and reviews come in from guests and logged-in customers alike.
	api.Post("/bookings", middleware.OptionalAuth(), handlers.CreateBooking)
	api.Post("/reviews", middleware.OptionalAuth(), handlers.CreateReview)
}
