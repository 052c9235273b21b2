package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/notifications"
	"github.com/kiprono589/savanna_tours/services"
	"gorm.io/gorm"
)

type CreateInquiryRequest struct {
	Name          string  `json:"name" validate:"required,min=2"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         *string `json:"phone,omitempty"`
	PackageID     *string `json:"package_id,omitempty" validate:"omitempty,uuid"`
	Message       string  `json:"message" validate:"required,min=10"`
	PreferredDate *string `json:"preferred_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Participants  *int    `json:"participants,omitempty" validate:"omitempty,min=1"`
}

func CreateInquiry(c *fiber.Ctx) error {
	var req CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inquiry := models.Inquiry{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		Participants: req.Participants,
		Status:       services.InquiryPending,
	}
	if req.PackageID != nil {
		packageID, _ := uuid.Parse(*req.PackageID)
		inquiry.PackageID = &packageID
	}
	if req.PreferredDate != nil {
		preferred, _ := time.Parse("2006-01-02", *req.PreferredDate)
		inquiry.PreferredDate = &preferred
	}

	if err := database.DB.Create(&inquiry).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "create inquiry", Err: err})
	}

	go func() {
		subject, body := notifications.InquiryReceivedEmail(inquiry.Name)
		notifications.SendEmail(inquiry.Name, inquiry.Email, subject, body)
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Inquiry submitted successfully. We will get back to you shortly.",
		"inquiry": inquiry,
	})
}

func AdminGetInquiries(c *fiber.Ctx) error {
	status := c.Query("status")

	inquiries := database.FindWithFallback([]models.Inquiry{}, func(db *gorm.DB) ([]models.Inquiry, error) {
		var out []models.Inquiry
		query := db.Order("created_at desc")
		if status != "" {
			query = query.Where("status = ?", status)
		}
		err := query.Find(&out).Error
		return out, err
	})
	return c.JSON(inquiries)
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending responded closed"`
}

// AdminUpdateInquiryStatus enforces the inquiry table at the engine boundary:
// an inquiry must be marked responded before it can be closed, and a closed
// inquiry can be reopened.
func AdminUpdateInquiryStatus(c *fiber.Ctx) error {
	inquiryID, err := uuid.Parse(c.Params("inquiryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid inquiry id"})
	}

	var req UpdateInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inquiry, err := services.TransitionInquiry(inquiryID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inquiry status updated", "inquiry": inquiry})
}

func AdminDeleteInquiry(c *fiber.Ctx) error {
	inquiryID := c.Params("inquiryId")

	result := database.DB.Delete(&models.Inquiry{}, "id = ?", inquiryID)
	if result.Error != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "delete inquiry", Err: result.Error})
	}
	if result.RowsAffected == 0 {
		return respondError(c, &services.NotFoundError{Entity: "inquiry", ID: inquiryID})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
