package controllers

import (
	"errors"

	"dealership-api/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error to an HTTP status. Missing entities are
// always 404 and validation failures 400; anything else uses the fallback,
// which differs between reads (500) and mutations (400).
func respondError(ctx *fiber.Ctx, err error, fallback int) error {
	status := fallback
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
