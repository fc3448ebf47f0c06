package admin

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
)

// TokenHeader is the admin shared-secret header. The same value may come in
// through the "key" query parameter; both are equally trusted so admin links
// stay shareable.
const TokenHeader = "X-Admin-Token"

// Token extracts the presented admin token, header first, then query.
func Token(c *fiber.Ctx) string {
	if h := c.Get(TokenHeader); h != "" {
		return h
	}
	return c.Query("key")
}

// Authorize compares a presented token against the configured secret. A
// configured bcrypt hash takes precedence over the plain token; with neither
// configured every request is rejected.
func Authorize(cfg *configs.Config, presented string) bool {
	if presented == "" {
		return false
	}
	if cfg.AdminTokenHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.AdminTokenHash), []byte(presented)) == nil
	}
	return cfg.AdminToken != "" && presented == cfg.AdminToken
}

// Authorized reports whether the request carries a valid admin token.
func Authorized(cfg *configs.Config, c *fiber.Ctx) bool {
	return Authorize(cfg, Token(c))
}

// Gate is the middleware guarding every admin route. Failures are an
// explicit authorization signal, never a generic error.
func Gate(cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Authorized(cfg, c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}
