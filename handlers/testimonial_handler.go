package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/services"
	"gorm.io/gorm"
)

type CreateTestimonialRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment" validate:"required,min=5"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

func CreateTestimonial(c *fiber.Ctx) error {
	var req CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	testimonial := models.Testimonial{
		Name:     req.Name,
		Email:    req.Email,
		Rating:   req.Rating,
		Comment:  req.Comment,
		ImageURL: req.ImageURL,
	}
	if err := database.DB.Create(&testimonial).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "create testimonial", Err: err})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Thank you for your feedback! It will appear once approved.",
		"testimonial": testimonial,
	})
}

// GetTestimonials lists approved testimonials; ?featured=true narrows to the
// promotional set.
func GetTestimonials(c *fiber.Ctx) error {
	featuredOnly := c.Query("featured") == "true"

	testimonials := database.FindWithFallback([]models.Testimonial{}, func(db *gorm.DB) ([]models.Testimonial, error) {
		var out []models.Testimonial
		query := db.Where("approved = ?", true).Order("created_at desc")
		if featuredOnly {
			query = query.Where("featured = ?", true)
		}
		err := query.Find(&out).Error
		return out, err
	})
	return c.JSON(testimonials)
}

func AdminGetTestimonials(c *fiber.Ctx) error {
	testimonials := database.FindWithFallback([]models.Testimonial{}, func(db *gorm.DB) ([]models.Testimonial, error) {
		var out []models.Testimonial
		err := db.Order("created_at desc").Find(&out).Error
		return out, err
	})
	return c.JSON(testimonials)
}

type TestimonialFlagsRequest struct {
	Approved *bool `json:"approved,omitempty"`
	Featured *bool `json:"featured,omitempty"`
}

func AdminSetTestimonialFlags(c *fiber.Ctx) error {
	testimonialID, err := uuid.Parse(c.Params("testimonialId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid testimonial id"})
	}

	var req TestimonialFlagsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Approved == nil && req.Featured == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one of approved or featured is required"})
	}

	testimonial, err := services.SetTestimonialFlags(testimonialID, req.Approved, req.Featured)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Testimonial flags updated", "testimonial": testimonial})
}

func AdminDeleteTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Params("testimonialId")

	result := database.DB.Delete(&models.Testimonial{}, "id = ?", testimonialID)
	if result.Error != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "delete testimonial", Err: result.Error})
	}
	if result.RowsAffected == 0 {
		return respondError(c, &services.NotFoundError{Entity: "testimonial", ID: testimonialID})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
