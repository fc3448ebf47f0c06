package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
	"github.com/josemeldlrs1103/graduacionjosemelendez/pkg/slugkey"
	"github.com/josemeldlrs1103/graduacionjosemelendez/repositories"
)

// InviteServiceError is a typed service error.
type InviteServiceError string

func (e InviteServiceError) Error() string { return string(e) }

const (
	ErrInviteNotFound     InviteServiceError = "invite not found"
	ErrInviteNameRequired InviteServiceError = "name is required"
	ErrInviteLimitInvalid InviteServiceError = "limit_guests must be a positive integer"
)

// IInviteService is the interface for invite registry operations.
type IInviteService interface {
	Resolve(ctx context.Context, slug string) (*models.Invite, error)
	List(ctx context.Context) ([]models.Invite, error)
	Create(ctx context.Context, name string, limitGuests int) (*models.Invite, error)
	Update(ctx context.Context, slug string, name *string, limitGuests *int) (*models.Invite, error)
	Delete(ctx context.Context, slug string) error
}

// InviteService implements IInviteService.
type InviteService struct {
	repo repositories.IInviteRepository
	cfg  *configs.Config
}

// NewInviteService builds the service over an injected repository so tests
// can substitute an in-memory fake.
func NewInviteService(repo repositories.IInviteRepository, cfg *configs.Config) IInviteService {
	return &InviteService{repo: repo, cfg: cfg}
}

// Resolve looks up an invite by exact slug.
func (s *InviteService) Resolve(ctx context.Context, slug string) (*models.Invite, error) {
	if slug == "" {
		return nil, ErrInviteNotFound
	}
	invite, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	return invite, nil
}

// List returns every invite ordered by display name under the configured
// locale's collation rules, so accented names sort the way the admin
// expects rather than by code point.
func (s *InviteService) List(ctx context.Context) ([]models.Invite, error) {
	invites, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	c := collate.New(s.cfg.NameLocale)
	sort.SliceStable(invites, func(i, j int) bool {
		return c.CompareString(invites[i].Name, invites[j].Name) < 0
	})
	return invites, nil
}

// Create validates the input, generates a free slug and persists the new
// invite. Slug collisions are retried inside the generator; a concurrent
// collision on the final insert surfaces as the database's conflict error.
func (s *InviteService) Create(ctx context.Context, name string, limitGuests int) (*models.Invite, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInviteNameRequired
	}
	if limitGuests <= 0 {
		return nil, ErrInviteLimitInvalid
	}

	slug, err := slugkey.Unique(ctx, s.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	invite := &models.Invite{Slug: slug, Name: name, LimitGuests: limitGuests}
	if err := s.repo.Create(ctx, invite); err != nil {
		configslog.Log.Error("InviteService.Create failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infow("invite created", "slug", slug, "name", name, "limit_guests", limitGuests)
	return invite, nil
}

// Update patches only the supplied fields of an existing invite.
func (s *InviteService) Update(ctx context.Context, slug string, name *string, limitGuests *int) (*models.Invite, error) {
	if slug == "" {
		return nil, ErrInviteNotFound
	}

	fields := map[string]interface{}{}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, ErrInviteNameRequired
		}
		fields["name"] = trimmed
	}
	if limitGuests != nil {
		if *limitGuests <= 0 {
			return nil, ErrInviteLimitInvalid
		}
		fields["limit_guests"] = *limitGuests
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, slug, fields); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrInviteNotFound
			}
			return nil, err
		}
	}

	invite, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	configslog.SLog.Infow("invite updated", "slug", slug)
	return invite, nil
}

// Delete removes an invite. Deleting an absent slug returns ErrInviteNotFound
// so the caller can report it, though callers treat it as non-fatal.
func (s *InviteService) Delete(ctx context.Context, slug string) error {
	if slug == "" {
		return ErrInviteNotFound
	}
	removed, err := s.repo.Delete(ctx, slug)
	if err != nil {
		return err
	}
	if !removed {
		return ErrInviteNotFound
	}
	configslog.SLog.Infow("invite deleted", "slug", slug)
	return nil
}

var _ IInviteService = (*InviteService)(nil)
