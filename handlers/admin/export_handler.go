package admin

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/services"
)

// ExportHandler serves the CSV export endpoint.
type ExportHandler struct {
	service services.IExportService
}

// NewExportHandler builds the handler over an injected service.
func NewExportHandler(service services.IExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// ExportCSV answers GET /api/admin/export as a csv attachment.
func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.service.RsvpsCSV(c.UserContext())
	if err != nil {
		configslog.Log.Error("csv export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rsvps.csv"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(data)
}
