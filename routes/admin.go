package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/handlers/admin"
)

// registerAdminRoutes wires /api/admin behind the shared-secret gate.
func registerAdminRoutes(app *fiber.App, cfg *configs.Config, h Handlers) {
	grp := app.Group("/api/admin", admin.Gate(cfg))

	grp.Get("/validate", h.AdminInvites.Validate)
	grp.Get("/invites", h.AdminInvites.List)
	grp.Post("/invites", h.AdminInvites.Save)
	grp.Delete("/invites", h.AdminInvites.Delete)
	grp.Get("/export", h.Export.ExportCSV)
}
