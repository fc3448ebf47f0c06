package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
	"github.com/josemeldlrs1103/graduacionjosemelendez/testutil"
)

func TestRsvpsCSV(t *testing.T) {
	invites := testutil.NewMemoryInviteRepository()
	rsvps := testutil.NewMemoryRsvpRepository()
	ctx := context.Background()

	require.NoError(t, invites.Upsert(ctx, &models.Invite{Slug: "linas", Name: "Familia Meléndez, Mendoza", LimitGuests: 4}))
	require.NoError(t, rsvps.Upsert(ctx, &models.Rsvp{
		Slug: "linas", Attending: true, Guests: 2,
		AttendeeNames: models.AttendeeNames{"Ana", "Luis"},
		UpdatedAt:     time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
	}))
	// Response whose invite was deleted keeps its row.
	require.NoError(t, rsvps.Upsert(ctx, &models.Rsvp{
		Slug: "gonex", Attending: false, Guests: 0,
		UpdatedAt: time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC),
	}))

	svc := NewExportService(rsvps, invites)
	data, err := svc.RsvpsCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"slug", "invitado", "asiste", "cupo", "asistentes", "nombres", "actualizado_iso"}, records[0])

	// Newest first: the orphaned response comes before the older one.
	require.Equal(t, "gonex", records[1][0])
	require.Equal(t, "(slug no encontrado)", records[1][1])
	require.Equal(t, "", records[1][3])

	require.Equal(t, []string{"linas", "Familia Meléndez, Mendoza", "si", "4", "2", "Ana; Luis", "2025-11-01T12:00:00Z"}, records[2])
}

func TestRsvpsCSVEmpty(t *testing.T) {
	svc := NewExportService(testutil.NewMemoryRsvpRepository(), testutil.NewMemoryInviteRepository())
	data, err := svc.RsvpsCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
