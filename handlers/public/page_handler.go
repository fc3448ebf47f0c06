package public

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/pkg/countdown"
	"github.com/josemeldlrs1103/graduacionjosemelendez/services"
)

// PageHandler renders the guest-facing HTML pages under /i/{slug}.
type PageHandler struct {
	invites services.IInviteService
	cfg     *configs.Config
}

// NewPageHandler builds the handler over an injected service.
func NewPageHandler(invites services.IInviteService, cfg *configs.Config) *PageHandler {
	return &PageHandler{invites: invites, cfg: cfg}
}

// Landing answers GET /i/:slug with the personalized cover page, or the
// not-found page when the slug does not resolve.
func (h *PageHandler) Landing(c *fiber.Ctx) error {
	slug := c.Params("slug")
	invite, err := h.invites.Resolve(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrInviteNotFound) {
			return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Invitación inexistente"})
		}
		configslog.Log.Error("landing page failed", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/404", fiber.Map{"Title": "Error"})
	}
	return c.Render("landing", fiber.Map{
		"Title":     invite.Name,
		"Invite":    invite,
		"Countdown": countdown.Until(h.cfg.EventDate, time.Now().UTC()),
		"EventDate": h.cfg.EventDate,
		"Message":   h.cfg.EventMessage,
	})
}

// Info answers GET /i/:slug/info with venue details and map links.
func (h *PageHandler) Info(c *fiber.Ctx) error {
	slug := c.Params("slug")
	invite, err := h.invites.Resolve(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrInviteNotFound) {
			return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Invitación inexistente"})
		}
		configslog.Log.Error("info page failed", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/404", fiber.Map{"Title": "Error"})
	}
	return c.Render("info", fiber.Map{
		"Title":        "Información",
		"Invite":       invite,
		"EventDate":    h.cfg.EventDate,
		"Timezone":     h.cfg.EventTimezone,
		"Message":      h.cfg.EventMessage,
		"VenueName":    h.cfg.VenueName,
		"VenueAddress": h.cfg.VenueAddress,
		"MapsURL":      h.cfg.MapsURL,
		"WazeURL":      h.cfg.WazeURL,
	})
}
