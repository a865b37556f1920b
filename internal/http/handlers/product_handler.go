package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ferresur/internal/domain"
	applog "ferresur/internal/log"
	"ferresur/internal/store"
)

type ProductHandler struct {
	Store *store.Store
}

// List returns the full product collection (public).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Store.Products()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(products)
}

// Replace swaps the entire product collection for the posted one (admin).
func (h *ProductHandler) Replace(c *fiber.Ctx) error {
	var products []domain.Product
	if err := c.BodyParser(&products); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "validation_error", "field": "body",
		})
	}
	for _, p := range products {
		if p.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "validation_error", "field": "name",
			})
		}
	}
	if err := h.Store.SaveProducts(products); err != nil {
		applog.Error(c, "products.replace.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	applog.Audit(c, "products.replace", map[string]any{"count": len(products)})
	return c.JSON(fiber.Map{"ok": true, "count": len(products)})
}
