package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/notifications"
	"github.com/kiprono589/savanna_tours/services"
	"github.com/kiprono589/savanna_tours/utils"
	"gorm.io/gorm"
)

var validate = validator.New()

type CreateBookingRequest struct {
	PackageID       string `json:"package_id" validate:"required,uuid"`
	TravelDate      string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	Participants    int    `json:"participants" validate:"required,min=1"`
	GuestName       string `json:"guest_name,omitempty"`
	GuestEmail      string `json:"guest_email,omitempty"`
	GuestPhone      string `json:"guest_phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// CreateBooking accepts submissions from both logged-in customers and guests.
// The submitter is normalized first, the total is computed once, and the
// booking is created in pending status.
func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	packageID, _ := uuid.Parse(req.PackageID)
	var pkg models.Package
	if err := database.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, &services.NotFoundError{Entity: "package", ID: req.PackageID})
		}
		return respondError(c, &services.StoreUnavailableError{Op: "load package", Err: err})
	}

	submitter, err := services.ResolveSubmitter(currentIdentity(c), services.GuestContact{
		Name:  req.GuestName,
		Email: req.GuestEmail,
		Phone: req.GuestPhone,
	}, true)
	if err != nil {
		return respondError(c, err)
	}

	total, err := services.ComputeTotal(&pkg, req.Participants)
	if err != nil {
		return respondError(c, err)
	}

	travelDate, _ := time.Parse("2006-01-02", req.TravelDate)

	reference, err := utils.GenerateUniqueBookingReference(database.DB)
	if err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "generate booking reference", Err: err})
	}

	booking := models.Booking{
		Reference:       reference,
		UserID:          submitter.UserID,
		GuestName:       submitter.Name,
		GuestEmail:      submitter.Email,
		GuestPhone:      submitter.Phone,
		PackageID:       &pkg.ID,
		PackageTitle:    pkg.Title,
		PackageImage:    pkg.ImageURL,
		TravelDate:      travelDate,
		Participants:    req.Participants,
		TotalAmount:     total,
		Currency:        pkg.Currency,
		SpecialRequests: req.SpecialRequests,
		Status:          services.BookingPending,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "create booking", Err: err})
	}

	go notifyBookingSubmitter(booking)

	response := fiber.Map{
		"message": "Booking submitted successfully. You will receive a confirmation shortly.",
		"booking": booking,
	}
	if pkg.PricingMode == models.PricingModeCustom && pkg.PriceText != nil {
		response["price_text"] = *pkg.PriceText
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func notifyBookingSubmitter(booking models.Booking) {
	name, email := bookingContact(booking)
	if email == "" {
		return
	}
	subject, body := notifications.BookingReceivedEmail(booking.Reference, booking.PackageTitle)
	notifications.SendEmail(name, email, subject, body)
}

// bookingContact resolves the notification recipient for either submission
// shape: the owning user's profile, or the guest snapshot.
func bookingContact(booking models.Booking) (string, string) {
	if booking.UserID != nil {
		var user models.User
		if err := database.DB.First(&user, "id = ?", *booking.UserID).Error; err != nil {
			return "", ""
		}
		return user.FullName, user.Email
	}
	return booking.GuestName, booking.GuestEmail
}

func GetMyBookings(c *fiber.Ctx) error {
	identity := currentIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	bookings := database.FindWithFallback([]models.Booking{}, func(db *gorm.DB) ([]models.Booking, error) {
		var out []models.Booking
		err := db.Where("user_id = ?", identity.ID).Order("created_at desc").Find(&out).Error
		return out, err
	})
	return c.JSON(bookings)
}

func AdminGetBookings(c *fiber.Ctx) error {
	status := c.Query("status")

	bookings := database.FindWithFallback([]models.Booking{}, func(db *gorm.DB) ([]models.Booking, error) {
		var out []models.Booking
		query := db.Order("created_at desc")
		if status != "" {
			query = query.Where("status = ?", status)
		}
		err := query.Find(&out).Error
		return out, err
	})
	return c.JSON(bookings)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// AdminUpdateBookingStatus drives a booking through its state machine. An
// illegal edge comes back as 409 with the rejected from/to pair.
func AdminUpdateBookingStatus(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.TransitionBooking(bookingID, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	if booking.Status == services.BookingConfirmed {
		go func(b models.Booking) {
			name, email := bookingContact(b)
			if email != "" {
				subject, body := notifications.BookingConfirmedEmail(b.Reference, b.PackageTitle)
				notifications.SendEmail(name, email, subject, body)
			}
			services.GenerateAndStoreVoucher(b)
		}(*booking)
	}

	return c.JSON(fiber.Map{"message": "Booking status updated", "booking": booking})
}

const voucherEligibilityMessage = "Vouchers are only available for confirmed or completed bookings"

// A voucher exists once a booking is confirmed and stays downloadable after
// the trip completes.
func voucherEligible(status string) bool {
	return status == services.BookingConfirmed || status == services.BookingCompleted
}

// AdminGetBookingVoucher renders the voucher PDF for a confirmed or completed
// booking and streams it back.
func AdminGetBookingVoucher(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, &services.NotFoundError{Entity: "booking", ID: bookingID})
		}
		return respondError(c, &services.StoreUnavailableError{Op: "load booking", Err: err})
	}

	if !voucherEligible(booking.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": voucherEligibilityMessage})
	}

	pdf, err := services.RenderVoucherPDF(booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render voucher"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="voucher-`+booking.Reference+`.pdf"`)
	return c.Send(pdf)
}
