package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ferresur/internal/campaign"
	applog "ferresur/internal/log"
)

// 1x1 transparent GIF served on every open hit.
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00,
	0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02,
	0x44, 0x01, 0x00, 0x3b,
}

type TrackingHandler struct {
	Campaigns *campaign.Service
}

// email path segments use "-" as the anonymous placeholder.
func trackedEmail(c *fiber.Ctx) string {
	email := c.Params("email")
	if email == "-" {
		return ""
	}
	return email
}

// Open records the first open per (campaign, email) and serves the
// pixel. Unknown campaigns silently no-op, the pixel is returned anyway.
func (h *TrackingHandler) Open(c *fiber.Ctx) error {
	id := c.Params("id")
	email := trackedEmail(c)
	if err := h.Campaigns.RecordOpen(id, email); err != nil {
		applog.Error(c, "track.open.fail", err, map[string]any{"campaign": id})
	} else {
		applog.Info(c, "track.open", map[string]any{"campaign": id, "email": email})
	}
	c.Set(fiber.HeaderContentType, "image/gif")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(pixelGIF)
}

// Link records the first click per (campaign, email) and redirects to
// the landing page with email, campaign id and asset URL attached.
func (h *TrackingHandler) Link(c *fiber.Ctx) error {
	id := c.Params("id")
	email := trackedEmail(c)
	target, err := h.Campaigns.RecordClick(id, email)
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("campaña no encontrada")
		}
		applog.Error(c, "track.link.fail", err, map[string]any{"campaign": id})
		return c.Status(fiber.StatusInternalServerError).SendString("error")
	}
	applog.Info(c, "track.link", map[string]any{"campaign": id, "email": email})
	return c.Redirect(target, fiber.StatusFound)
}

// Go resolves a public campaign link. Records nothing.
func (h *TrackingHandler) Go(c *fiber.Ctx) error {
	id := c.Params("id")
	target, err := h.Campaigns.GoTarget(id)
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("campaña no encontrada")
		}
		applog.Error(c, "public.go.fail", err, map[string]any{"campaign": id})
		return c.Status(fiber.StatusInternalServerError).SendString("error")
	}
	return c.Redirect(target, fiber.StatusFound)
}
