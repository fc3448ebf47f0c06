package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
	"github.com/josemeldlrs1103/graduacionjosemelendez/repositories"
)

// RsvpServiceError is a typed service error. Guest-facing messages are in
// Spanish, matching what the invitation pages show.
type RsvpServiceError string

func (e RsvpServiceError) Error() string { return string(e) }

const (
	ErrRsvpInviteNotFound RsvpServiceError = "invitación inexistente"
	ErrRsvpInvalidGuests  RsvpServiceError = "cantidad inválida"
	ErrRsvpLimitExceeded  RsvpServiceError = "máximo permitido excedido"
	ErrRsvpNamesMismatch  RsvpServiceError = "la cantidad de nombres no coincide con los asistentes"
)

// IRsvpService is the interface for attendance responses.
type IRsvpService interface {
	Get(ctx context.Context, slug string) (*models.Rsvp, error)
	ListAll(ctx context.Context) ([]models.Rsvp, error)
	Submit(ctx context.Context, slug string, attending bool, guests int, attendeeNames []string) (*models.Rsvp, error)
}

// RsvpService implements IRsvpService. A slug's response is a single-slot
// register: every submission fully replaces the previous one, last write
// wins, and no version token is kept.
type RsvpService struct {
	rsvps   repositories.IRsvpRepository
	invites repositories.IInviteRepository
	cfg     *configs.Config
}

// NewRsvpService builds the service over injected repositories.
func NewRsvpService(rsvps repositories.IRsvpRepository, invites repositories.IInviteRepository, cfg *configs.Config) IRsvpService {
	return &RsvpService{rsvps: rsvps, invites: invites, cfg: cfg}
}

// Get returns the response recorded for a slug, or nil without error when
// the invite exists but nobody has answered yet. Unknown slugs are an error.
func (s *RsvpService) Get(ctx context.Context, slug string) (*models.Rsvp, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrRsvpInviteNotFound
	}
	if _, err := s.invites.FindBySlug(ctx, slug); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRsvpInviteNotFound
		}
		return nil, err
	}

	rsvp, err := s.rsvps.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rsvp, nil
}

// ListAll returns every response, newest first. Authorization is the
// caller's concern (admin gate at the route).
func (s *RsvpService) ListAll(ctx context.Context) ([]models.Rsvp, error) {
	return s.rsvps.FindAllNewestFirst(ctx)
}

// Submit validates and upserts a response. Validation order: slug resolves
// to an invite, then guest count bounds, then the attendee-names rule.
// Not attending forces guests to 0 and drops any names. On success a history
// row is appended best-effort; its failure is logged and swallowed.
func (s *RsvpService) Submit(ctx context.Context, slug string, attending bool, guests int, attendeeNames []string) (*models.Rsvp, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrRsvpInviteNotFound
	}

	invite, err := s.invites.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRsvpInviteNotFound
		}
		return nil, err
	}

	names := models.AttendeeNames(nil)
	if attending {
		if guests < 1 {
			return nil, ErrRsvpInvalidGuests
		}
		if guests > invite.LimitGuests {
			return nil, fmt.Errorf("%w: máximo permitido: %d", ErrRsvpLimitExceeded, invite.LimitGuests)
		}
		names, err = s.normalizeNames(attendeeNames, guests)
		if err != nil {
			return nil, err
		}
	} else {
		if guests < 0 {
			return nil, ErrRsvpInvalidGuests
		}
		// Declining always stores guests=0 with no names, regardless of
		// what was previously recorded.
		guests = 0
	}

	rsvp := &models.Rsvp{
		Slug:          slug,
		Attending:     attending,
		Guests:        guests,
		AttendeeNames: names,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.rsvps.Upsert(ctx, rsvp); err != nil {
		configslog.Log.Error("RsvpService.Submit: upsert failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	history := &models.RsvpHistory{
		Slug:          slug,
		Attending:     attending,
		Guests:        guests,
		AttendeeNames: names,
	}
	if err := s.rsvps.AppendHistory(ctx, history); err != nil {
		configslog.Log.Warn("RsvpService.Submit: history append failed", zap.String("slug", slug), zap.Error(err))
	}

	configslog.SLog.Infow("rsvp recorded", "slug", slug, "attending", attending, "guests", guests)
	return rsvp, nil
}

// normalizeNames trims the supplied names and applies the strict length rule
// when enabled. An empty list is always accepted; names are optional.
func (s *RsvpService) normalizeNames(raw []string, guests int) (models.AttendeeNames, error) {
	names := make(models.AttendeeNames, 0, len(raw))
	for _, n := range raw {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	if s.cfg.StrictAttendeeNames && len(names) != guests {
		return nil, ErrRsvpNamesMismatch
	}
	return names, nil
}

var _ IRsvpService = (*RsvpService)(nil)
