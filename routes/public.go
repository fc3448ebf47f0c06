package routes

import "github.com/gofiber/fiber/v2"

// registerPublicRoutes wires the guest-facing API and pages. GET /api/rsvp
// doubles as the admin listing when no slug is supplied; the handler checks
// the token itself for that branch.
func registerPublicRoutes(app *fiber.App, h Handlers) {
	app.Get("/api/rsvp", h.Rsvp.Get)
	app.Post("/api/rsvp", h.Rsvp.Submit)
	app.Get("/api/event", h.Event.Get)

	app.Get("/i/:slug", h.Pages.Landing)
	app.Get("/i/:slug/info", h.Pages.Info)
}
