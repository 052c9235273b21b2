// file: handlers/upload_handler.go
package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	config "github.com/kiprono589/savanna_tours/configs"
)

const uploadFolder = "savanna_tours_media"

// GenerateUploadSignature creates a secure signature so the frontend can
// upload review and package images directly to Cloudinary.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	apiKey := cld.Config.Cloud.APIKey

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   apiKey,
		"folder":    uploadFolder,
	})
}
