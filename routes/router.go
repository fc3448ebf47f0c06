package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/handlers/admin"
	"github.com/josemeldlrs1103/graduacionjosemelendez/handlers/public"
)

// Handlers bundles every constructed handler for route registration.
type Handlers struct {
	AdminInvites *admin.InviteHandler
	Export       *admin.ExportHandler
	Rsvp         *public.RsvpHandler
	Pages        *public.PageHandler
	Event        *public.EventHandler
}

// SetupRoutes installs the global middlewares and every route group. The
// trailing handler catches everything unmatched.
func SetupRoutes(app *fiber.App, cfg *configs.Config, h Handlers) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerAdminRoutes(app, cfg, h)
	registerPublicRoutes(app, h)

	app.Use(notFoundHandler)
}

// notFoundHandler answers JSON for API clients and the 404 page otherwise.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Página no encontrada"})
	}
}
