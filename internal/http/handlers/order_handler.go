package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"afterschool/internal/domain"
	applog "afterschool/internal/log"
	"afterschool/internal/repos"
	"afterschool/internal/services"
	"afterschool/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

// Place accepts an order candidate as JSON, validates it, reserves capacity,
// and returns the stored order.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var candidate domain.Order
	if err := c.BodyParser(&candidate); err != nil {
		applog.Security(c, "order.parse.fail", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed order body"})
	}

	orderID, err := h.Order.Place(candidate)
	if err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			applog.Security(c, "order.validation.fail", map[string]any{"violations": len(verrs)})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "invalid order",
				"fields": verrs,
			})
		}
		// business rule errors (unknown lesson, insufficient spaces) surface as 400
		applog.Security(c, "order.place.fail", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "items": len(candidate.Items)})

	placed, err := h.Repo.Get(orderID)
	if err != nil {
		applog.Error(c, "order.load", err, map[string]any{"order_id": orderID})
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": orderID})
	}
	return c.Status(fiber.StatusCreated).JSON(placed)
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid := c.Params("id")
	if oid == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	o, err := h.Repo.Get(oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	return c.JSON(o)
}

// Latest lists recent orders, newest first.
func (h *OrderHandler) Latest(c *fiber.Ctx) error {
	orders, err := h.Repo.ListLatest(c.QueryInt("limit", 100))
	if err != nil {
		applog.Error(c, "orders.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(orders)
}
