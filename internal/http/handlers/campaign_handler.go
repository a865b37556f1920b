package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"ferresur/internal/campaign"
	"ferresur/internal/config"
	"ferresur/internal/domain"
	applog "ferresur/internal/log"
	"ferresur/internal/validate"
)

type CampaignHandler struct {
	Campaigns *campaign.Service
	Cfg       config.Config
}

type sendRequest struct {
	Subject    string             `json:"subject"`
	PDFURL     string             `json:"pdfUrl"`
	Emails     []string           `json:"emails"`
	SMTPConfig *domain.SMTPConfig `json:"smtpConfig"`
	PublicURL  string             `json:"publicUrl"`
}

type publicRequest struct {
	Subject   string `json:"subject"`
	PDFURL    string `json:"pdfUrl"`
	PublicURL string `json:"publicUrl"`
}

// Send creates a bulk campaign and starts the background delivery loop.
// The response declares acceptance before any recipient is attempted;
// only the pre-send SMTP probe can fail the request (and rolls the
// just-created record back).
func (h *CampaignHandler) Send(c *fiber.Ctx) error {
	var req sendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "body"})
	}
	subject, ok := validate.Subject(req.Subject)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "subject"})
	}
	pdfURL, ok := validate.URL(req.PDFURL)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "pdfUrl"})
	}
	if len(req.Emails) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "emails"})
	}
	recipients := make([]string, 0, len(req.Emails))
	for _, raw := range req.Emails {
		email, ok := validate.Email(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "emails"})
		}
		recipients = append(recipients, email)
	}
	base := ""
	if req.PublicURL != "" {
		if base, ok = validate.URL(req.PublicURL); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "publicUrl"})
		}
	}

	// Persist the pending record before any network I/O.
	created, err := h.Campaigns.Create(subject, pdfURL, len(recipients), "")
	if err != nil {
		applog.Error(c, "campaign.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}

	mailer, verifyErr := h.buildMailer(req.SMTPConfig)
	if verifyErr != nil {
		// Abort: delete the record, not mark it failed.
		if rerr := h.Campaigns.Remove(created.ID); rerr != nil {
			applog.Error(c, "campaign.rollback.fail", rerr, map[string]any{"campaign": created.ID})
		}
		applog.Error(c, "campaign.verify.fail", verifyErr, map[string]any{"campaign": created.ID})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "smtp_verify_failed",
			"details":  "no se pudo conectar al servidor SMTP",
			"response": verifyErr.Error(),
		})
	}

	applog.Audit(c, "campaign.send.start", map[string]any{
		"campaign": created.ID, "total": len(recipients),
	})
	// Fire and forget: the caller is decoupled from per-recipient latency.
	go h.Campaigns.Deliver(context.Background(), created, recipients, mailer, base)

	return c.JSON(fiber.Map{"ok": true, "id": created.ID, "status": "sending_started"})
}

// Public creates a link-based (QR) campaign: same ledger shape, total=0,
// nothing emailed.
func (h *CampaignHandler) Public(c *fiber.Ctx) error {
	var req publicRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "body"})
	}
	subject, ok := validate.Subject(req.Subject)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "subject"})
	}
	pdfURL, ok := validate.URL(req.PDFURL)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "pdfUrl"})
	}
	base := ""
	if req.PublicURL != "" {
		if base, ok = validate.URL(req.PublicURL); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "field": "publicUrl"})
		}
	}

	created, err := h.Campaigns.Create(subject, pdfURL, 0, campaign.TypePublic)
	if err != nil {
		applog.Error(c, "campaign.public.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	applog.Audit(c, "campaign.public.create", map[string]any{"campaign": created.ID})
	return c.JSON(fiber.Map{"ok": true, "id": created.ID, "link": h.Campaigns.PublicLink(created.ID, base)})
}

// List returns the full ledger (admin report data).
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.Campaigns.List()
	if err != nil {
		applog.Error(c, "campaign.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage_error"})
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return c.JSON(campaigns)
}

// buildMailer picks the transport: request credentials win, then the
// server-wide SMTP defaults from the environment; with neither, the
// simulated transport. A real client always gets a connectivity probe
// before the first recipient.
func (h *CampaignHandler) buildMailer(reqCfg *domain.SMTPConfig) (campaign.Mailer, error) {
	smtp := reqCfg
	if smtp == nil || smtp.Host == "" {
		if h.Cfg.SMTPHost == "" {
			return campaign.NoopMailer{}, nil
		}
		smtp = &domain.SMTPConfig{
			Host: h.Cfg.SMTPHost,
			Port: h.Cfg.SMTPPort,
			User: h.Cfg.SMTPUser,
			Pass: h.Cfg.SMTPPass,
			From: h.Cfg.SMTPFrom,
		}
	}
	m, err := campaign.NewSMTPMailer(*smtp)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.Verify(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
