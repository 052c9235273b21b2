package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	PackageID  string         `json:"package_id" validate:"required,uuid"`
	Rating     int            `json:"rating" validate:"required,min=1,max=5"`
	Comment    string         `json:"comment" validate:"required,min=5"`
	Images     datatypes.JSON `json:"images,omitempty"`
	GuestName  string         `json:"guest_name,omitempty"`
	GuestEmail string         `json:"guest_email,omitempty"`
}

// CreateReview accepts reviews from customers and guests alike. Reviews are
// created unapproved and stay off the public listing until staff approve
// them.
func CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
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
	}, false)
	if err != nil {
		return respondError(c, err)
	}

	review := models.Review{
		UserID:       submitter.UserID,
		GuestName:    submitter.Name,
		GuestEmail:   submitter.Email,
		PackageID:    pkg.ID,
		PackageTitle: pkg.Title,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Images:       req.Images,
		Approved:     false,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "create review", Err: err})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review submitted. It will appear once approved by our team.",
		"review":  review,
	})
}

func GetPackageReviews(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	reviews := database.FindWithFallback([]models.Review{}, func(db *gorm.DB) ([]models.Review, error) {
		var out []models.Review
		err := db.Where("package_id = ? AND approved = ?", packageID, true).
			Order("created_at desc").Find(&out).Error
		return out, err
	})
	return c.JSON(reviews)
}

func GetMyReviews(c *fiber.Ctx) error {
	identity := currentIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	reviews := database.FindWithFallback([]models.Review{}, func(db *gorm.DB) ([]models.Review, error) {
		var out []models.Review
		err := db.Where("user_id = ?", identity.ID).Order("created_at desc").Find(&out).Error
		return out, err
	})
	return c.JSON(reviews)
}

func AdminGetReviews(c *fiber.Ctx) error {
	approved := c.Query("approved")

	reviews := database.FindWithFallback([]models.Review{}, func(db *gorm.DB) ([]models.Review, error) {
		var out []models.Review
		query := db.Order("created_at desc")
		if approved == "true" || approved == "false" {
			query = query.Where("approved = ?", approved == "true")
		}
		err := query.Find(&out).Error
		return out, err
	})
	return c.JSON(reviews)
}

type ReviewApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

func AdminSetReviewApproval(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req ReviewApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.SetReviewApproval(reviewID, *req.Approved)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review approval updated", "review": review})
}

func AdminDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("reviewId")

	result := database.DB.Delete(&models.Review{}, "id = ?", reviewID)
	if result.Error != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "delete review", Err: result.Error})
	}
	if result.RowsAffected == 0 {
		return respondError(c, &services.NotFoundError{Entity: "review", ID: reviewID})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
