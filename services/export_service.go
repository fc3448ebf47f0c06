package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
	"github.com/josemeldlrs1103/graduacionjosemelendez/repositories"
)

// IExportService builds the admin CSV export.
type IExportService interface {
	RsvpsCSV(ctx context.Context) ([]byte, error)
}

// ExportService implements IExportService by joining responses with the
// invite registry in memory.
type ExportService struct {
	rsvps   repositories.IRsvpRepository
	invites repositories.IInviteRepository
}

// NewExportService builds the service over injected repositories.
func NewExportService(rsvps repositories.IRsvpRepository, invites repositories.IInviteRepository) IExportService {
	return &ExportService{rsvps: rsvps, invites: invites}
}

// RsvpsCSV returns every response as CSV, newest first. Responses whose
// invite was deleted keep their row with a placeholder name and empty quota.
func (s *ExportService) RsvpsCSV(ctx context.Context) ([]byte, error) {
	rsvps, err := s.rsvps.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	invites, err := s.invites.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]models.Invite, len(invites))
	for _, inv := range invites {
		bySlug[inv.Slug] = inv
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"slug", "invitado", "asiste", "cupo", "asistentes", "nombres", "actualizado_iso"}); err != nil {
		return nil, err
	}
	for _, r := range rsvps {
		name := "(slug no encontrado)"
		limit := ""
		if inv, ok := bySlug[r.Slug]; ok {
			name = inv.Name
			limit = strconv.Itoa(inv.LimitGuests)
		}
		attending := "no"
		if r.Attending {
			attending = "si"
		}
		record := []string{
			r.Slug,
			name,
			attending,
			limit,
			strconv.Itoa(r.Guests),
			strings.Join(r.AttendeeNames, "; "),
			r.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ IExportService = (*ExportService)(nil)
