package controllers

import (
	"dealership-api/models"
	"dealership-api/services"

	"github.com/gofiber/fiber/v2"
)

// CustomerController handles HTTP requests related to customers.
type CustomerController struct {
	service services.ICustomerService
}

// NewCustomerController creates a new CustomerController instance.
func NewCustomerController(svc services.ICustomerService) *CustomerController {
	return &CustomerController{service: svc}
}

// Create handles POST /customers/.
func (c *CustomerController) Create(ctx *fiber.Ctx) error {
	var req models.CustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	customer, err := c.service.Create(&req)
	if err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.Status(fiber.StatusCreated).JSON(customer)
}

// List handles GET /customers/?skip=&limit=.
func (c *CustomerController) List(ctx *fiber.Ctx) error {
	customers, err := c.service.List(ctx.QueryInt("skip", 0), ctx.QueryInt("limit", 100))
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(customers)
}

// Get handles GET /customers/:id.
func (c *CustomerController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := c.service.Get(uint(id))
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(customer)
}

// Update handles PUT /customers/:id, a full-record replace.
func (c *CustomerController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var req models.CustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	customer, err := c.service.Update(uint(id), &req)
	if err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.JSON(customer)
}

// Delete handles DELETE /customers/:id.
func (c *CustomerController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	if err := c.service.Delete(uint(id)); err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.JSON(fiber.Map{"message": "Customer deleted successfully"})
}

// Search handles GET /customers/search/:name.
func (c *CustomerController) Search(ctx *fiber.Ctx) error {
	customers, err := c.service.SearchByName(ctx.Params("name"))
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(customers)
}
