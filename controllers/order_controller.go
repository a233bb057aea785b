package controllers

import (
	"fmt"

	"dealership-api/models"
	"dealership-api/services"

	"github.com/gofiber/fiber/v2"
)

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	service services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{service: svc}
}

// Create handles POST /orders/. The response embeds the resolved customer
// and vehicle records.
func (c *OrderController) Create(ctx *fiber.Ctx) error {
	var req models.OrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	order, err := c.service.Create(&req)
	if err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// List handles GET /orders/?skip=&limit=&status=.
func (c *OrderController) List(ctx *fiber.Ctx) error {
	orders, err := c.service.List(
		ctx.QueryInt("skip", 0),
		ctx.QueryInt("limit", 100),
		ctx.Query("status"),
	)
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(orders)
}

// Get handles GET /orders/:id.
func (c *OrderController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := c.service.Get(uint(id))
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(order)
}

// Update handles PUT /orders/:id, a full replace of the mutable fields.
func (c *OrderController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req models.OrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	order, err := c.service.Update(uint(id), &req)
	if err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.JSON(order)
}

// Delete handles DELETE /orders/:id.
func (c *OrderController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	if err := c.service.Delete(uint(id)); err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.JSON(fiber.Map{"message": "Order deleted successfully"})
}

// ListByCustomer handles GET /orders/customer/:customerId.
func (c *OrderController) ListByCustomer(ctx *fiber.Ctx) error {
	customerID, err := ctx.ParamsInt("customerId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	orders, err := c.service.ListByCustomer(uint(customerID))
	if err != nil {
		return respondError(ctx, err, fiber.StatusInternalServerError)
	}
	return ctx.JSON(orders)
}

// SetStatus handles PUT /orders/:id/status?status=.
func (c *OrderController) SetStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := c.service.SetStatus(uint(id), ctx.Query("status"))
	if err != nil {
		return respondError(ctx, err, fiber.StatusBadRequest)
	}
	return ctx.JSON(fiber.Map{"message": fmt.Sprintf("Order status updated to %s", order.Status)})
}
