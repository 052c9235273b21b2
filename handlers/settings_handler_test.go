package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
)

func TestAdminGetSettingsDegradesWhenStoreIsDown(t *testing.T) {
	restore := database.DB
	database.DB = nil
	defer func() { database.DB = restore }()

	app := fiber.New()
	app.Get("/admin/settings", AdminGetSettings)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/settings", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var settings []models.Setting
	if err := json.Unmarshal(body, &settings); err != nil {
		t.Fatalf("expected a JSON list, got %q: %v", body, err)
	}
	if len(settings) != 0 {
		t.Fatalf("expected an empty list from a degraded store, got %d rows", len(settings))
	}
}
