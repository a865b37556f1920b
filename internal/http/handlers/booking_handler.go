package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ferresur/internal/booking"
	"ferresur/internal/domain"
	applog "ferresur/internal/log"
	"ferresur/internal/validate"
)

type BookingHandler struct {
	Booking *booking.Service
}

type bookRequest struct {
	ClientName string `json:"clientName"`
	Phone      string `json:"phone"`
	Service    string `json:"service"`
	SlotStart  string `json:"slotStart"`
}

// Book places an appointment (public).
func (h *BookingHandler) Book(c *fiber.Ctx) error {
	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "body"})
	}
	name := strings.TrimSpace(req.ClientName)
	service := strings.TrimSpace(req.Service)
	if name == "" || service == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "clientName"})
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "phone"})
	}
	if _, err := time.Parse(time.RFC3339, req.SlotStart); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "slotStart"})
	}

	a, err := h.Booking.Book(name, phone, service, req.SlotStart)
	if err != nil {
		if errors.Is(err, booking.ErrSlotTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "slot_taken"})
		}
		applog.Error(c, "booking.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	applog.Audit(c, "booking.create", map[string]any{"appointment": a.ID, "slot": a.SlotStart})
	return c.JSON(fiber.Map{"ok": true, "id": a.ID})
}

// List returns the latest appointments (admin).
func (h *BookingHandler) List(c *fiber.Ctx) error {
	appointments, err := h.Booking.List(c.QueryInt("limit", 100))
	if err != nil {
		applog.Error(c, "booking.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	return c.JSON(appointments)
}

// Cancel marks an appointment cancelled (admin).
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "id"})
	}
	if err := h.Booking.Cancel(id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("cita no encontrada")
		}
		applog.Error(c, "booking.cancel.fail", err, map[string]any{"appointment": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	applog.Audit(c, "booking.cancel", map[string]any{"appointment": id})
	return c.JSON(fiber.Map{"ok": true})
}
