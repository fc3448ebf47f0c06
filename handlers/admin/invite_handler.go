package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/services"
)

// InviteHandler serves the admin invite CRUD endpoints.
type InviteHandler struct {
	service services.IInviteService
}

// NewInviteHandler builds the handler over an injected service.
func NewInviteHandler(service services.IInviteService) *InviteHandler {
	return &InviteHandler{service: service}
}

// Validate answers GET /api/admin/validate. The gate middleware already
// checked the token; reaching here means it was valid.
func (h *InviteHandler) Validate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// List answers GET /api/admin/invites, ordered by display name.
func (h *InviteHandler) List(c *fiber.Ctx) error {
	invites, err := h.service.List(c.UserContext())
	if err != nil {
		configslog.Log.Error("admin list invites failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(fiber.Map{"invites": invites})
}

// saveInviteRequest is the POST body. Pointer fields distinguish absent from
// zero so partial updates work; malformed shapes are rejected outright.
type saveInviteRequest struct {
	Slug        *string `json:"slug"`
	Name        *string `json:"name"`
	LimitGuests *int    `json:"limit_guests"`
}

// Save answers POST /api/admin/invites. Without a slug it creates a new
// invite (name and limit required, slug generated); with a slug it patches
// the supplied fields of an existing one.
func (h *InviteHandler) Save(c *fiber.Ctx) error {
	var req saveInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Slug == nil || *req.Slug == "" {
		if req.Name == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing name"})
		}
		if req.LimitGuests == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing limit_guests"})
		}
		invite, err := h.service.Create(c.UserContext(), *req.Name, *req.LimitGuests)
		if err != nil {
			return h.saveError(c, err)
		}
		return c.JSON(fiber.Map{"invite": invite})
	}

	invite, err := h.service.Update(c.UserContext(), *req.Slug, req.Name, req.LimitGuests)
	if err != nil {
		return h.saveError(c, err)
	}
	return c.JSON(fiber.Map{"invite": invite})
}

func (h *InviteHandler) saveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInviteNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInviteNameRequired), errors.Is(err, services.ErrInviteLimitInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Two admins generated the same slug at the same instant; the
		// generator retried its probes, the insert still lost the race.
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "slug conflict, retry"})
	default:
		configslog.Log.Error("admin save invite failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
}

type deleteInviteRequest struct {
	Slug string `json:"slug"`
}

// Delete answers DELETE /api/admin/invites with body {slug}.
func (h *InviteHandler) Delete(c *fiber.Ctx) error {
	var req deleteInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing slug"})
	}
	if err := h.service.Delete(c.UserContext(), req.Slug); err != nil {
		if errors.Is(err, services.ErrInviteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("admin delete invite failed", zap.String("slug", req.Slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(fiber.Map{"ok": true})
}
