package public

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/pkg/countdown"
)

// EventHandler serves the static event facts shared by every guest.
type EventHandler struct {
	cfg *configs.Config
}

// NewEventHandler builds the handler.
func NewEventHandler(cfg *configs.Config) *EventHandler {
	return &EventHandler{cfg: cfg}
}

// Get answers GET /api/event with the event details and a server-computed
// countdown snapshot.
func (h *EventHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"event": fiber.Map{
			"date":     h.cfg.EventDate.Format(time.RFC3339),
			"message":  h.cfg.EventMessage,
			"timezone": h.cfg.EventTimezone,
			"venue": fiber.Map{
				"name":    h.cfg.VenueName,
				"address": h.cfg.VenueAddress,
			},
			"maps_url": h.cfg.MapsURL,
			"waze_url": h.cfg.WazeURL,
		},
		"countdown": countdown.Until(h.cfg.EventDate, time.Now().UTC()),
	})
}
