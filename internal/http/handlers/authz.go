package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"ferresur/internal/config"
	applog "ferresur/internal/log"
)

// AdminAuthorizer checks basic-auth credentials against the configured
// admin account. A bcrypt hash takes precedence over a plain password.
func AdminAuthorizer(cfg config.Config) func(user, pass string) bool {
	return func(user, pass string) bool {
		if subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUser)) != 1 {
			return false
		}
		if cfg.AdminPassHash != "" {
			return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassHash), []byte(pass)) == nil
		}
		return cfg.AdminPass != "" &&
			subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.AdminPass)) == 1
	}
}

// AdminUnauthorized is the basic-auth failure surface.
func AdminUnauthorized(c *fiber.Ctx) error {
	applog.Security(c, "access.denied.admin", nil)
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="ferresur admin"`)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "auth_error"})
}

// APIKeyValidator gates the external chat endpoint on X-Api-Key.
func APIKeyValidator(cfg config.Config) func(*fiber.Ctx, string) (bool, error) {
	return func(c *fiber.Ctx, key string) (bool, error) {
		ok := cfg.APIKey != "" &&
			subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) == 1
		if !ok {
			applog.Security(c, "access.denied.apikey", nil)
		}
		return ok, nil
	}
}

// APIKeyError is the keyauth failure surface.
func APIKeyError(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "auth_error"})
}
