package handlers

import (
	"github.com/jmoiron/sqlx"

	"ferresur/internal/booking"
	"ferresur/internal/campaign"
	"ferresur/internal/config"
	"ferresur/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CampaignHandler *CampaignHandler
	TrackingHandler *TrackingHandler
	ChatHandler     *ChatHandler
	CatalogHandler  *CatalogHandler
	BookingHandler  *BookingHandler
	ReportHandler   *ReportHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	st := store.New(db)

	campaignSvc := campaign.NewService(st, cfg.BaseURL, cfg.LandingURL)
	bookingSvc := booking.NewService(booking.NewRepo(db))

	return &Deps{
		ProductHandler:  &ProductHandler{Store: st},
		CampaignHandler: &CampaignHandler{Campaigns: campaignSvc, Cfg: cfg},
		TrackingHandler: &TrackingHandler{Campaigns: campaignSvc},
		ChatHandler:     &ChatHandler{Store: st},
		CatalogHandler:  &CatalogHandler{Store: st},
		BookingHandler:  &BookingHandler{Booking: bookingSvc},
		ReportHandler:   &ReportHandler{Campaigns: campaignSvc},
	}
}
