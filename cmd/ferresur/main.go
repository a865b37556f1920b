package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"ferresur/internal/config"
	"ferresur/internal/http/handlers"
	applog "ferresur/internal/log"
	"ferresur/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := store.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			// Tracking hits arrive in bursts from mail clients; never drop them.
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/api/track/")
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", cfg.MediaDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)

	adminGate := basicauth.New(basicauth.Config{
		Authorizer:   handlers.AdminAuthorizer(cfg),
		Unauthorized: handlers.AdminUnauthorized,
	})
	apiKeyGate := keyauth.New(keyauth.Config{
		KeyLookup:    "header:X-Api-Key",
		Validator:    handlers.APIKeyValidator(cfg),
		ErrorHandler: handlers.APIKeyError,
	})

	api := app.Group("/api")

	// Public catalog & tracking
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/track/open/:id/:email", deps.TrackingHandler.Open)
	api.Get("/track/link/:id/:email", deps.TrackingHandler.Link)
	api.Get("/public/go/:id", deps.TrackingHandler.Go)

	// Admin surface
	api.Post("/products", adminGate, deps.ProductHandler.Replace)
	api.Post("/campaign/send", adminGate, deps.CampaignHandler.Send)
	api.Post("/campaign/public", adminGate, deps.CampaignHandler.Public)
	api.Get("/campaigns", adminGate, deps.CampaignHandler.List)
	api.Get("/catalogs/:name", adminGate, deps.CatalogHandler.Get)
	api.Put("/catalogs/:name", adminGate, deps.CatalogHandler.Put)

	// Appointments
	api.Post("/appointments", deps.BookingHandler.Book)
	api.Get("/appointments", adminGate, deps.BookingHandler.List)
	api.Post("/appointments/:id/cancel", adminGate, deps.BookingHandler.Cancel)

	// External chat (API-key gated, throttled)
	api.Post("/external/chat", apiKeyGate, limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.chat.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.ChatHandler.Respond)

	// Admin report pages
	admin := app.Group("/admin", adminGate)
	admin.Get("/campaigns", deps.ReportHandler.CampaignsPage)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("no encontrado")
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
