package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetSettings is the public settings read. A degraded store renders an empty
// map; the storefront falls back to its built-in defaults.
func GetSettings(c *fiber.Ctx) error {
	settings := database.FindWithFallback([]models.Setting{}, func(db *gorm.DB) ([]models.Setting, error) {
		var out []models.Setting
		err := db.Order("category, key").Find(&out).Error
		return out, err
	})

	byKey := make(map[string]datatypes.JSON, len(settings))
	for _, setting := range settings {
		byKey[setting.Key] = setting.Value
	}
	return c.JSON(byKey)
}

// AdminGetSettings lists the full setting rows. Like every list read it
// degrades to empty on a store failure.
func AdminGetSettings(c *fiber.Ctx) error {
	settings := database.FindWithFallback([]models.Setting{}, func(db *gorm.DB) ([]models.Setting, error) {
		var out []models.Setting
		err := db.Order("category, key").Find(&out).Error
		return out, err
	})
	return c.JSON(settings)
}

type UpdateSettingRequest struct {
	Value       json.RawMessage `json:"value" validate:"required"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// AdminUpdateSetting upserts a single key. Last write wins; there is no
// version history.
func AdminUpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var req UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	setting, err := services.Settings().Set(key, datatypes.JSON(req.Value), req.Category, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Setting updated", "setting": setting})
}
