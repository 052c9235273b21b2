package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/services"
	"gorm.io/gorm"
)

func ListDestinations(c *fiber.Ctx) error {
	destinations := database.FindWithFallback([]models.Destination{}, func(db *gorm.DB) ([]models.Destination, error) {
		var out []models.Destination
		err := db.Order("featured desc, name").Find(&out).Error
		return out, err
	})
	return c.JSON(destinations)
}

type DestinationRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Region      string  `json:"region"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Featured    bool    `json:"featured"`
}

func AdminCreateDestination(c *fiber.Ctx) error {
	var req DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	destination := models.Destination{
		Name:        req.Name,
		Region:      req.Region,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
	}
	if err := database.DB.Create(&destination).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "create destination", Err: err})
	}
	return c.Status(fiber.StatusCreated).JSON(destination)
}

func AdminUpdateDestination(c *fiber.Ctx) error {
	destinationID := c.Params("destinationId")

	var destination models.Destination
	if err := database.DB.First(&destination, "id = ?", destinationID).Error; err != nil {
		return respondError(c, &services.NotFoundError{Entity: "destination", ID: destinationID})
	}

	var req DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	destination.Name = req.Name
	destination.Region = req.Region
	destination.Description = req.Description
	destination.ImageURL = req.ImageURL
	destination.Featured = req.Featured
	if err := database.DB.Save(&destination).Error; err != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "update destination", Err: err})
	}
	return c.JSON(destination)
}

func AdminDeleteDestination(c *fiber.Ctx) error {
	destinationID := c.Params("destinationId")

	result := database.DB.Delete(&models.Destination{}, "id = ?", destinationID)
	if result.Error != nil {
		return respondError(c, &services.StoreUnavailableError{Op: "delete destination", Err: result.Error})
	}
	if result.RowsAffected == 0 {
		return respondError(c, &services.NotFoundError{Entity: "destination", ID: destinationID})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
