package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/handlers"
	"github.com/kiprono589/savanna_tours/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
