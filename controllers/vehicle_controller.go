package controllers

import (
	"strconv"

	"dealership-api/models"
	"dealership-api/services"

	"github.com/gofiber/fiber/v2"
)

// VehicleController handles HTTP requests related to vehicles.
type VehicleController struct {
	service services.IVehicleService
}

// NewVehicleController creates a new VehicleController instance.
func NewVehicleController(svc services.IVehicleService) *VehicleController {
	return &VehicleController{service: svc}
}

// Create handles POST /vehicles/.
func (c *VehicleController) Create(ctx *fiber.Ctx) error {
	var req models.VehicleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	vehicle, err := c.service.Create(&req)
	if err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.Status(fiber.StatusCreated).JSON(vehicle)
}

// List handles GET /vehicles/?skip=&limit=&make=&available=. Both filters
// are optional and combinable.
func (c *VehicleController) List(ctx *fiber.Ctx) error {
	var available *bool
	if raw := ctx.Query("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid available filter"})
		}
		available = &parsed
	}

	vehicles, err := c.service.List(
		ctx.QueryInt("skip", 0),
		ctx.QueryInt("limit", 100),
		ctx.Query("make"),
		available,
	)
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(vehicles)
}

// Get handles GET /vehicles/:id.
func (c *VehicleController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	vehicle, err := c.service.Get(uint(id))
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(vehicle)
}

// Update handles PUT /vehicles/:id, a full-record replace.
func (c *VehicleController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var req models.VehicleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	vehicle, err := c.service.Update(uint(id), &req)
	if err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.JSON(vehicle)
}

// Delete handles DELETE /vehicles/:id.
func (c *VehicleController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	if err := c.service.Delete(uint(id)); err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}

// Search handles GET /vehicles/search/:model.
func (c *VehicleController) Search(ctx *fiber.Ctx) error {
	vehicles, err := c.service.SearchByModel(ctx.Params("model"))
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(vehicles)
}
