package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ferresur/internal/campaign"
	applog "ferresur/internal/log"
)

// ReportHandler renders the admin campaign report page.
type ReportHandler struct {
	Campaigns *campaign.Service
}

type campaignRow struct {
	ID      string
	Date    string
	Subject string
	Type    string
	Total   int
	Sent    int
	Opens   int
	Clicks  int
}

func (h *ReportHandler) CampaignsPage(c *fiber.Ctx) error {
	campaigns, err := h.Campaigns.List()
	if err != nil {
		applog.Error(c, "admin.campaigns.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "No se pudieron cargar las campañas",
		})
	}
	rows := make([]campaignRow, 0, len(campaigns))
	for _, cp := range campaigns {
		typ := cp.Type
		if typ == "" {
			typ = "email"
		}
		rows = append(rows, campaignRow{
			ID: cp.ID, Date: cp.Date, Subject: cp.Subject, Type: typ,
			Total: cp.Total, Sent: cp.Sent,
			Opens: len(cp.Opens), Clicks: len(cp.Clicks),
		})
	}
	return c.Render("admin_campaigns", fiber.Map{"Rows": rows, "Count": len(rows)})
}
