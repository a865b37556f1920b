package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string // served at /static (campaign images, QR posters)
	LogFile  string

	// Admin basic-auth gate. AdminPassHash (bcrypt) wins over AdminPass
	// when both are set.
	AdminUser     string
	AdminPass     string
	AdminPassHash string

	// API key for the external chat endpoint.
	APIKey string

	// BaseURL is where tracking links point back to; LandingURL is the
	// download page campaigns redirect to.
	BaseURL    string
	LandingURL string

	// Default outbound mail settings, used when a send request carries no
	// custom smtpConfig. Empty host means the simulated transport.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBDSN:         getenv("DB_DSN", "ferresur.db"), // sqlite file in project root
		MediaDir:      getenv("MEDIA_DIR", "./web/media"),
		LogFile:       getenv("LOG_FILE", "./ferresur.log"),
		AdminUser:     getenv("ADMIN_USER", "admin"),
		AdminPass:     os.Getenv("ADMIN_PASS"),
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),
		APIKey:        os.Getenv("API_KEY"),
		BaseURL:       getenv("BASE_URL", "http://localhost:8080"),
		LandingURL:    getenv("LANDING_URL", "http://localhost:8080/descarga"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		SMTPFrom:      getenv("SMTP_FROM", "no-reply@ferresur.test"),
	}
	cfg.SMTPPort = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SMTPPort = n
		}
	}
	log.Printf("[config] PORT=%s DB_DSN=%s BASE_URL=%s SMTP_HOST=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.BaseURL, cfg.SMTPHost, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
