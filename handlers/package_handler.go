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

// ListPackages is the storefront catalogue view. A degraded store renders as
// an empty catalogue, not an error page.
func ListPackages(c *fiber.Ctx) error {
	featuredOnly := c.Query("featured") == "true"
	destinationID := c.Query("destination_id")

	packages := database.FindWithFallback([]models.Package{}, func(db *gorm.DB) ([]models.Package, error) {
		var out []models.Package
		query := db.Preload("Destination").Order("featured desc, created_at desc")
		if featuredOnly {
			query = query.Where("featured = ?", true)
		}
		if destinationID != "" {
			query = query.Where("destination_id = ?", destinationID)
		}
		err := query.Find(&out).Error
		return out, err
	})
	return c.JSON(packages)
}

func GetPackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	var pkg models.Package
	if err := database.DB.Preload("Destination").First(&pkg, "id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, &services.NotFoundError{Entity: "package", ID: packageID})
		}
		return respondError(c, &services.StoreUnavailableError{Op: "load package", Err: err})
	}

	// View counter is best effort; a failed increment never blocks the page.
	database.DB.Model(&pkg).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	pkg.ViewCount++

	return c.JSON(pkg)
}

type PackageRequest struct {
	Title           string         `json:"title" validate:"required,min=3"`
	Description     string         `json:"description"`
	DestinationID   *string        `json:"destination_id,omitempty" validate:"omitempty,uuid"`
	DurationDays    int            `json:"duration_days" validate:"required,min=1"`
	MaxParticipants int            `json:"max_participants" validate:"min=0"`
	PricingMode     string         `json:"pricing_mode" validate:"required,oneof=fixed custom"`
	UnitPrice       *float64       `json:"unit_price,omitempty"`
	PriceText       *string        `json:"price_text,omitempty"`
	Currency        string         `json:"currency" validate:"required,iso4217"`
	Included        datatypes.JSON `json:"included,omitempty"`
	Excluded        datatypes.JSON `json:"excluded,omitempty"`
	Itinerary       datatypes.JSON `json:"itinerary,omitempty"`
	Activities      datatypes.JSON `json:"activities,omitempty"`
	ImageURL        *string        `json:"image_url,omitempty" validate:"omitempty,url"`
	Featured        bool           `json:"featured"`
}

// validatePricing checks the mode/field pairing: a fixed package needs a
// positive unit price, a custom one needs price text.
func validatePricing(req *PackageRequest) error {
	switch req.PricingMode {
	case models.PricingModeFixed:
		if req.UnitPrice == nil || *req.UnitPrice <= 0 {
			return &services.ValidationError{Field: "unit_price", Reason: "fixed pricing requires a positive unit price"}
		}
		req.PriceText = nil
	case models.PricingModeCustom:
		if req.PriceText == nil || *req.PriceText == "" {
			return &services.ValidationError{Field: "price_text", Reason: "custom pricing requires a price description"}
		}
		req.UnitPrice = nil
	}
	return nil
}

func applyPackageRequest(pkg *models.Package, req *PackageRequest) {
	pkg.Title = req.Title
	pkg.Description = req.Description
	pkg.DurationDays = req.DurationDays
	pkg.MaxParticipants = req.MaxParticipants
	pkg.PricingMode = req.PricingMode
	pkg.UnitPrice = req.UnitPrice
	pkg.PriceText = req.PriceText
	pkg.Currency = req.Currency
	pkg.Included = req.Included
	pkg.Excluded = req.Excluded
	pkg.Itinerary = req.Itinerary
	pkg.Activities = req.Activities
	pkg.ImageURL = req.ImageURL
	pkg.Featured = req.Featured
	if req.DestinationID != nil {
		if id, err := uuid.Parse(*req.DestinationID); err == nil {
			pkg.DestinationID = &id
		}
	} else {
		pkg.DestinationID = nil
	}
}

func AdminCreatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validatePricing(&req); err != nil {
		return respondError(c, err)
	}

	var pkg models.Package
	applyPackageRequest(&pkg, &req)
	if err := database.DB.Create(&pkg).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "create package", Err: err})
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func AdminUpdatePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	var pkg models.Package
	if err := database.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		return respondError(c, &services.NotFoundError{Entity: "package", ID: packageID})
	}

	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validatePricing(&req); err != nil {
		return respondError(c, err)
	}

	applyPackageRequest(&pkg, &req)
	if err := database.DB.Save(&pkg).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "update package", Err: err})
	}
	return c.JSON(pkg)
}

func AdminDeletePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	result := database.DB.Delete(&models.Package{}, "id = ?", packageID)
	if result.Error != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "delete package", Err: result.Error})
	}
	if result.RowsAffected == 0 {
		return respondError(c, &services.NotFoundError{Entity: "package", ID: packageID})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
