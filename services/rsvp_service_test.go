package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
	"github.com/josemeldlrs1103/graduacionjosemelendez/repositories"
	"github.com/josemeldlrs1103/graduacionjosemelendez/testutil"
)

func newRsvpFixture(t *testing.T) (*RsvpService, *testutil.MemoryRsvpRepository, *testutil.MemoryInviteRepository) {
	t.Helper()
	invites := testutil.NewMemoryInviteRepository()
	rsvps := testutil.NewMemoryRsvpRepository()
	require.NoError(t, invites.Upsert(context.Background(), &models.Invite{
		Slug: "linas", Name: "Familia Meléndez Mendoza", LimitGuests: 4,
	}))
	svc := NewRsvpService(rsvps, invites, testConfig()).(*RsvpService)
	return svc, rsvps, invites
}

func TestRsvpSubmitUnknownSlug(t *testing.T) {
	svc, _, _ := newRsvpFixture(t)

	_, err := svc.Submit(context.Background(), "nadie", true, 1, nil)
	require.ErrorIs(t, err, ErrRsvpInviteNotFound)

	_, err = svc.Submit(context.Background(), "", true, 1, nil)
	require.ErrorIs(t, err, ErrRsvpInviteNotFound)
}

func TestRsvpSubmitGuestBounds(t *testing.T) {
	svc, _, _ := newRsvpFixture(t)
	ctx := context.Background()

	// Attending with zero guests is rejected: confirming means at least one.
	_, err := svc.Submit(ctx, "linas", true, 0, nil)
	require.ErrorIs(t, err, ErrRsvpInvalidGuests)

	_, err = svc.Submit(ctx, "linas", true, -2, nil)
	require.ErrorIs(t, err, ErrRsvpInvalidGuests)

	_, err = svc.Submit(ctx, "linas", true, 5, nil)
	require.ErrorIs(t, err, ErrRsvpLimitExceeded)
	require.Contains(t, err.Error(), "4")
}

func TestRsvpSubmitRejectsBeforeWrite(t *testing.T) {
	svc, rsvps, _ := newRsvpFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "linas", true, 99, nil)
	require.Error(t, err)

	_, err = rsvps.FindBySlug(ctx, "linas")
	require.ErrorIs(t, err, repositories.ErrNotFound, "rejected submission must not write")
	require.Empty(t, rsvps.History())
}

func TestRsvpRoundTrip(t *testing.T) {
	svc, _, _ := newRsvpFixture(t)
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "linas", true, 2, []string{"Ana", "Luis"})
	require.NoError(t, err)
	require.True(t, submitted.Attending)
	require.Equal(t, 2, submitted.Guests)

	got, err := svc.Get(ctx, "linas")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Attending)
	require.Equal(t, 2, got.Guests)
	require.Equal(t, models.AttendeeNames{"Ana", "Luis"}, got.AttendeeNames)
}

func TestRsvpIdempotentResubmit(t *testing.T) {
	svc, _, _ := newRsvpFixture(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, "linas", true, 2, []string{"Ana", "Luis"})
	require.NoError(t, err)

	second, err := svc.Submit(ctx, "linas", true, 2, []string{"Ana", "Luis"})
	require.NoError(t, err)

	require.Equal(t, first.Attending, second.Attending)
	require.Equal(t, first.Guests, second.Guests)
	require.False(t, second.UpdatedAt.Before(first.UpdatedAt), "updated_at must advance")

	stored, err := svc.Get(ctx, "linas")
	require.NoError(t, err)
	require.Equal(t, 2, stored.Guests)
}

func TestRsvpDecliningForcesZeroGuests(t *testing.T) {
	svc, _, _ := newRsvpFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "linas", true, 3, []string{"Ana", "Luis", "Eva"})
	require.NoError(t, err)

	declined, err := svc.Submit(ctx, "linas", false, 3, []string{"Ana"})
	require.NoError(t, err)
	require.False(t, declined.Attending)
	require.Equal(t, 0, declined.Guests)
	require.Empty(t, declined.AttendeeNames)

	stored, err := svc.Get(ctx, "linas")
	require.NoError(t, err)
	require.Equal(t, 0, stored.Guests)
}

func TestRsvpStrictNamesRule(t *testing.T) {
	svc, _, _ := newRsvpFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "linas", true, 3, []string{"Ana", "Luis"})
	require.ErrorIs(t, err, ErrRsvpNamesMismatch)

	// Blank entries do not count as supplied names.
	got, err := svc.Submit(ctx, "linas", true, 2, []string{"  ", ""})
	require.NoError(t, err)
	require.Empty(t, got.AttendeeNames)
}

func TestRsvpLenientNamesRule(t *testing.T) {
	invites := testutil.NewMemoryInviteRepository()
	rsvps := testutil.NewMemoryRsvpRepository()
	ctx := context.Background()
	require.NoError(t, invites.Upsert(ctx, &models.Invite{Slug: "linas", Name: "Familia", LimitGuests: 4}))

	cfg := testConfig()
	cfg.StrictAttendeeNames = false
	svc := NewRsvpService(rsvps, invites, cfg)

	got, err := svc.Submit(ctx, "linas", true, 3, []string{"Ana"})
	require.NoError(t, err)
	require.Equal(t, models.AttendeeNames{"Ana"}, got.AttendeeNames)
}

func TestRsvpHistoryAppended(t *testing.T) {
	svc, rsvps, _ := newRsvpFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "linas", true, 2, []string{"Ana", "Luis"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "linas", false, 0, nil)
	require.NoError(t, err)

	history := rsvps.History()
	require.Len(t, history, 2)
	require.True(t, history[0].Attending)
	require.Equal(t, 2, history[0].Guests)
	require.False(t, history[1].Attending)
}

func TestRsvpHistoryFailureIsSwallowed(t *testing.T) {
	svc, rsvps, _ := newRsvpFixture(t)
	rsvps.FailHistory = errors.New("history table missing")
	ctx := context.Background()

	got, err := svc.Submit(ctx, "linas", true, 1, nil)
	require.NoError(t, err, "history failure must not fail the primary write")
	require.NotNil(t, got)

	stored, err := svc.Get(ctx, "linas")
	require.NoError(t, err)
	require.Equal(t, 1, stored.Guests)
}

func TestRsvpGetSemantics(t *testing.T) {
	svc, _, _ := newRsvpFixture(t)
	ctx := context.Background()

	// Known invite, no response yet: nil without error.
	got, err := svc.Get(ctx, "linas")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = svc.Get(ctx, "nadie")
	require.ErrorIs(t, err, ErrRsvpInviteNotFound)
}

func TestRsvpListAllNewestFirst(t *testing.T) {
	svc, rsvps, invites := newRsvpFixture(t)
	ctx := context.Background()
	require.NoError(t, invites.Upsert(ctx, &models.Invite{Slug: "kimlo", Name: "Derly Rodas", LimitGuests: 4}))

	older := &models.Rsvp{Slug: "linas", Attending: true, Guests: 1, UpdatedAt: time.Now().UTC().Add(-time.Hour)}
	require.NoError(t, rsvps.Upsert(ctx, older))
	newer := &models.Rsvp{Slug: "kimlo", Attending: true, Guests: 2, UpdatedAt: time.Now().UTC()}
	require.NoError(t, rsvps.Upsert(ctx, newer))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "kimlo", all[0].Slug)
	require.Equal(t, "linas", all[1].Slug)
}
