package campaign

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ferresur/internal/domain"
	applog "ferresur/internal/log"
	"ferresur/internal/store"
)

var ErrNotFound = errors.New("campaign not found")

// TypePublic marks link-based (QR) campaigns; emailed campaigns have no type.
const TypePublic = "public"

// Service owns the campaign ledger and the delivery loop. Every ledger
// mutation is a whole-collection read-modify-write; concurrent tracking
// hits and a running send loop interleave last-writer-wins (see the
// lost-update note on Deliver).
type Service struct {
	Store      *store.Store
	BaseURL    string
	LandingURL string
}

func NewService(s *store.Store, baseURL, landingURL string) *Service {
	return &Service{Store: s, BaseURL: baseURL, LandingURL: landingURL}
}

// Create appends a pending campaign at the head of the ledger and
// persists it before any network I/O, so a crash mid-send leaves a
// visible record with Sent=0.
func (s *Service) Create(subject, pdfURL string, total int, typ string) (domain.Campaign, error) {
	id := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if typ == TypePublic {
		id = "qr-" + id
	}
	campaigns, err := s.Store.Campaigns()
	if err != nil {
		return domain.Campaign{}, err
	}
	// Same-millisecond submissions get a numeric suffix.
	base := id
	for i := 1; ledgerHas(campaigns, id); i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	c := domain.Campaign{
		ID:      id,
		Date:    time.Now().Format(time.RFC3339),
		Subject: subject,
		PDFURL:  pdfURL,
		Total:   total,
		Sent:    0,
		Opens:   map[string]string{},
		Clicks:  map[string]string{},
		Type:    typ,
	}
	campaigns = append([]domain.Campaign{c}, campaigns...)
	if err := s.Store.SaveCampaigns(campaigns); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

func ledgerHas(campaigns []domain.Campaign, id string) bool {
	for _, c := range campaigns {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes a campaign outright. Only used to roll back a
// just-created record when the SMTP probe fails before any send.
func (s *Service) Remove(id string) error {
	campaigns, err := s.Store.Campaigns()
	if err != nil {
		return err
	}
	kept := campaigns[:0]
	for _, c := range campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.Store.SaveCampaigns(kept)
}

func (s *Service) List() ([]domain.Campaign, error) {
	return s.Store.Campaigns()
}

func (s *Service) Get(id string) (domain.Campaign, error) {
	campaigns, err := s.Store.Campaigns()
	if err != nil {
		return domain.Campaign{}, err
	}
	for _, c := range campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Campaign{}, ErrNotFound
}

// Deliver runs the per-recipient send loop to completion: strictly in
// input order, one at a time, failures logged and skipped. It then
// re-reads the ledger (not the in-memory snapshot) and persists the
// final sent count, so tracking events recorded during the loop are kept
// as of that read. A tracking write racing the final write can still be
// lost; that window is accepted behavior, not a bug.
// base, when non-empty, overrides the configured BaseURL in embedded
// tracking links (callers behind a proxy pass their public URL).
func (s *Service) Deliver(ctx context.Context, c domain.Campaign, recipients []string, mailer Mailer, base string) int {
	sent := 0
	for _, to := range recipients {
		html, err := renderEmail(emailData{
			Subject:  c.Subject,
			ClickURL: s.trackURL(base, "link", c.ID, to),
			PixelURL: s.trackURL(base, "open", c.ID, to),
		})
		if err != nil {
			applog.Error(nil, "campaign.render.fail", err, map[string]any{"campaign": c.ID, "to": to})
			continue
		}
		if err := mailer.Send(ctx, Message{To: to, Subject: c.Subject, HTML: html}); err != nil {
			applog.Error(nil, "campaign.recipient.fail", err, map[string]any{"campaign": c.ID, "to": to})
			continue
		}
		sent++
	}

	campaigns, err := s.Store.Campaigns()
	if err != nil {
		applog.Error(nil, "campaign.finalize.read.fail", err, map[string]any{"campaign": c.ID})
		return sent
	}
	for i := range campaigns {
		if campaigns[i].ID == c.ID {
			campaigns[i].Sent = sent
			break
		}
	}
	if err := s.Store.SaveCampaigns(campaigns); err != nil {
		applog.Error(nil, "campaign.finalize.write.fail", err, map[string]any{"campaign": c.ID})
	}
	return sent
}

// RecordOpen stamps the first open per (campaign, email). Unknown
// campaigns and repeat hits are silent no-ops; the caller serves the
// pixel either way.
func (s *Service) RecordOpen(id, email string) error {
	return s.stamp(id, email, func(c *domain.Campaign) map[string]string {
		if c.Opens == nil {
			c.Opens = map[string]string{}
		}
		return c.Opens
	})
}

// RecordClick stamps the first click per (campaign, email) and returns
// the landing redirect carrying email, campaign id and the asset URL.
func (s *Service) RecordClick(id, email string) (string, error) {
	c, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if err := s.stamp(id, email, func(c *domain.Campaign) map[string]string {
		if c.Clicks == nil {
			c.Clicks = map[string]string{}
		}
		return c.Clicks
	}); err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("email", email)
	q.Set("campaign", id)
	q.Set("pdf", c.PDFURL)
	return s.LandingURL + "?" + q.Encode(), nil
}

// PublicLink is the shareable redirect for a QR campaign.
func (s *Service) PublicLink(id, base string) string {
	if base == "" {
		base = s.BaseURL
	}
	return base + "/api/public/go/" + url.PathEscape(id)
}

// GoTarget resolves a public campaign's landing redirect. Records nothing.
func (s *Service) GoTarget(id string) (string, error) {
	c, err := s.Get(id)
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("campaign", c.ID)
	q.Set("pdf", c.PDFURL)
	return s.LandingURL + "?" + q.Encode(), nil
}

// stamp writes the first-hit timestamp for (id, email) into the map
// selected by pick. Missing campaign or existing timestamp: no-op.
func (s *Service) stamp(id, email string, pick func(*domain.Campaign) map[string]string) error {
	campaigns, err := s.Store.Campaigns()
	if err != nil {
		return err
	}
	for i := range campaigns {
		if campaigns[i].ID != id {
			continue
		}
		events := pick(&campaigns[i])
		if _, seen := events[email]; seen {
			return nil
		}
		events[email] = time.Now().Format(time.RFC3339)
		return s.Store.SaveCampaigns(campaigns)
	}
	return nil
}

func (s *Service) trackURL(base, kind, id, email string) string {
	if base == "" {
		base = s.BaseURL
	}
	if email == "" {
		email = "-"
	}
	return fmt.Sprintf("%s/api/track/%s/%s/%s", base, kind, url.PathEscape(id), url.PathEscape(email))
}
