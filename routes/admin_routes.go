package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/handlers"
	"github.com/kiprono589/savanna_tours/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard", handlers.GetDashboardSummary)
	admin.Post("/setup", handlers.RunSetup)

	bookings := admin.Group("/bookings")
	bookings.Get("", handlers.AdminGetBookings)
	bookings.Put("/:bookingId/status", handlers.AdminUpdateBookingStatus)
	bookings.Get("/:bookingId/voucher", handlers.AdminGetBookingVoucher)

	reports := admin.Group("/reports")
	reports.Get("/bookings", handlers.GenerateBookingReport)

	inquiries := admin.Group("/inquiries")
	inquiries.Get("", handlers.AdminGetInquiries)
	inquiries.Put("/:inquiryId/status", handlers.AdminUpdateInquiryStatus)
	inquiries.Delete("/:inquiryId", handlers.AdminDeleteInquiry)

	reviews := admin.Group("/reviews")
	reviews.Get("", handlers.AdminGetReviews)
	reviews.Put("/:reviewId/approval", handlers.AdminSetReviewApproval)
	reviews.Delete("/:reviewId", handlers.AdminDeleteReview)

	testimonials := admin.Group("/testimonials")
	testimonials.Get("", handlers.AdminGetTestimonials)
	testimonials.Put("/:testimonialId/flags", handlers.AdminSetTestimonialFlags)
	testimonials.Delete("/:testimonialId", handlers.AdminDeleteTestimonial)

	packages := admin.Group("/packages")
	packages.Post("", handlers.AdminCreatePackage)
	packages.Put("/:packageId", handlers.AdminUpdatePackage)
	packages.Delete("/:packageId", handlers.AdminDeletePackage)

	destinations := admin.Group("/destinations")
	destinations.Post("", handlers.AdminCreateDestination)
	destinations.Put("/:destinationId", handlers.AdminUpdateDestination)
	destinations.Delete("/:destinationId", handlers.AdminDeleteDestination)

	settings := admin.Group("/settings")
	settings.Get("", handlers.AdminGetSettings)
	settings.Put("/:key", handlers.AdminUpdateSetting)
}
