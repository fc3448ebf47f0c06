package public

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/handlers/admin"
	"github.com/josemeldlrs1103/graduacionjosemelendez/services"
)

// RsvpHandler serves the /api/rsvp endpoints: the guest read and submit
// flows plus the admin-wide listing.
type RsvpHandler struct {
	service services.IRsvpService
	cfg     *configs.Config
}

// NewRsvpHandler builds the handler over an injected service.
func NewRsvpHandler(service services.IRsvpService, cfg *configs.Config) *RsvpHandler {
	return &RsvpHandler{service: service, cfg: cfg}
}

// Get answers GET /api/rsvp. With ?slug= it is the unauthenticated guest
// read; without it, the admin listing (token required).
func (h *RsvpHandler) Get(c *fiber.Ctx) error {
	slug := c.Query("slug")
	if slug == "" {
		return h.listAll(c)
	}

	rsvp, err := h.service.Get(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrRsvpInviteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("rsvp get failed", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	if rsvp == nil {
		return c.JSON(fiber.Map{"rsvp": nil})
	}
	return c.JSON(fiber.Map{"rsvp": rsvp})
}

func (h *RsvpHandler) listAll(c *fiber.Ctx) error {
	if !admin.Authorized(h.cfg, c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	rsvps, err := h.service.ListAll(c.UserContext())
	if err != nil {
		configslog.Log.Error("rsvp list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(fiber.Map{"rsvps": rsvps})
}

// submitRequest is the POST body. Pointer fields reject bodies that omit
// attending or guests instead of coercing them to defaults.
type submitRequest struct {
	Slug          string   `json:"slug"`
	Attending     *bool    `json:"attending"`
	Guests        *int     `json:"guests"`
	AttendeeNames []string `json:"attendee_names"`
}

// Submit answers POST /api/rsvp.
func (h *RsvpHandler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing slug"})
	}
	if req.Attending == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing attending"})
	}
	if req.Guests == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing guests"})
	}

	rsvp, err := h.service.Submit(c.UserContext(), req.Slug, *req.Attending, *req.Guests, req.AttendeeNames)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRsvpInviteNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrRsvpInvalidGuests),
			errors.Is(err, services.ErrRsvpLimitExceeded),
			errors.Is(err, services.ErrRsvpNamesMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("rsvp submit failed", zap.String("slug", req.Slug), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
	}
	return c.JSON(fiber.Map{"rsvp": rsvp})
}
