package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/handlers"
	"github.com/kiprono589/savanna_tours/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)

	review := api.Group("/reviews", middleware.Protected())
	review.Get("/me", handlers.GetMyReviews)
}
