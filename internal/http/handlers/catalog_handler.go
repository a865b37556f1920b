package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ferresur/internal/domain"
	applog "ferresur/internal/log"
	"ferresur/internal/store"
	"ferresur/internal/validate"
)

// CatalogHandler is the admin-gated content store: named JSON documents
// (price lists, promo sheets) replaced wholesale on write.
type CatalogHandler struct {
	Store *store.Store
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	name, ok := validate.ID(c.Params("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "name"})
	}
	docs, err := h.Store.Catalogs()
	if err != nil {
		applog.Error(c, "catalogs.get.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	for _, d := range docs {
		if d.Name == name {
			return c.JSON(d)
		}
	}
	return c.Status(fiber.StatusNotFound).SendString("catálogo no encontrado")
}

func (h *CatalogHandler) Put(c *fiber.Ctx) error {
	name, ok := validate.ID(c.Params("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "name"})
	}
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "body"})
	}

	docs, err := h.Store.Catalogs()
	if err != nil {
		applog.Error(c, "catalogs.put.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	doc := domain.CatalogDoc{Name: name, Data: data, UpdatedAt: time.Now().Format(time.RFC3339)}
	replaced := false
	for i := range docs {
		if docs[i].Name == name {
			docs[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		docs = append(docs, doc)
	}
	if err := h.Store.SaveCatalogs(docs); err != nil {
		applog.Error(c, "catalogs.put.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	applog.Audit(c, "catalogs.put", map[string]any{"name": name})
	return c.JSON(fiber.Map{"ok": true, "name": name})
}
