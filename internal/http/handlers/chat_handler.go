package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ferresur/internal/log"
	"ferresur/internal/recommend"
	"ferresur/internal/store"
	"ferresur/internal/validate"
)

type ChatHandler struct {
	Store *store.Store
}

type chatRequest struct {
	Mensaje  string `json:"mensaje"`
	Telefono string `json:"telefono"`
}

// Respond answers one WhatsApp-style message with a product
// recommendation and upserts the client contact record.
func (h *ChatHandler) Respond(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "body"})
	}
	message, ok := validate.Message(req.Mensaje)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "mensaje"})
	}

	products, err := h.Store.Products()
	if err != nil {
		applog.Error(c, "chat.catalog.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	answer := recommend.Reply(message, products)

	if phone, ok := validate.Phone(req.Telefono); ok {
		if err := h.Store.UpsertClient(phone, message); err != nil {
			// Contact bookkeeping never blocks the reply.
			applog.Error(c, "chat.client.fail", err, map[string]any{"phone": phone})
		}
	}

	applog.Info(c, "chat.reply", map[string]any{"len": len(answer)})
	return c.JSON(fiber.Map{"respuesta_ia": answer})
}
