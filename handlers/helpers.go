package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kiprono589/savanna_tours/services"
)

// currentIdentity extracts the authenticated identity from the request, or
// nil for anonymous requests on OptionalAuth routes.
func currentIdentity(c *fiber.Ctx) *services.AuthIdentity {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	idStr, _ := claims["user_id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}

	identity := &services.AuthIdentity{ID: id}
	identity.Email, _ = claims["email"].(string)
	identity.Name, _ = claims["name"].(string)
	identity.Role, _ = claims["role"].(string)
	return identity
}

// respondError translates engine errors into HTTP responses. A failed write
// is always an explicit failure to the customer, never a silent success.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var transitionErr *services.InvalidTransitionError
	var notFoundErr *services.NotFoundError
	var storeErr *services.StoreUnavailableError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Error()})
	case errors.As(err, &transitionErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": transitionErr.Error(),
			"from":  transitionErr.From,
			"to":    transitionErr.To,
		})
	case errors.As(err, &storeErr):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "We could not save your request right now. Please try again."})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
