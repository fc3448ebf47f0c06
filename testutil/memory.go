// Package testutil holds in-memory repository doubles used by the service
// and route tests. Nothing in the server wires these; production code always
// runs against the Postgres repositories.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
	"github.com/josemeldlrs1103/graduacionjosemelendez/repositories"
)

// MemoryInviteRepository is an in-memory IInviteRepository mirroring the
// semantics of the Postgres implementation (unique slug, name-ordered
// listing).
type MemoryInviteRepository struct {
	mu      sync.RWMutex
	invites map[string]models.Invite
}

// NewMemoryInviteRepository returns an empty in-memory registry.
func NewMemoryInviteRepository() *MemoryInviteRepository {
	return &MemoryInviteRepository{invites: make(map[string]models.Invite)}
}

func (r *MemoryInviteRepository) FindBySlug(_ context.Context, slug string) (*models.Invite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	invite, ok := r.invites[slug]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &invite, nil
}

func (r *MemoryInviteRepository) FindAll(_ context.Context) ([]models.Invite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Invite, 0, len(r.invites))
	for _, invite := range r.invites {
		out = append(out, invite)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryInviteRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.invites[slug]
	return ok, nil
}

func (r *MemoryInviteRepository) Create(_ context.Context, invite *models.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invites[invite.Slug]; ok {
		return gorm.ErrDuplicatedKey
	}
	now := time.Now().UTC()
	invite.CreatedAt = now
	invite.UpdatedAt = now
	r.invites[invite.Slug] = *invite
	return nil
}

func (r *MemoryInviteRepository) Upsert(_ context.Context, invite *models.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.invites[invite.Slug]; ok {
		invite.CreatedAt = existing.CreatedAt
	} else {
		invite.CreatedAt = now
	}
	invite.UpdatedAt = now
	r.invites[invite.Slug] = *invite
	return nil
}

func (r *MemoryInviteRepository) UpdateFields(_ context.Context, slug string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	invite, ok := r.invites[slug]
	if !ok {
		return repositories.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		invite.Name = name
	}
	if limit, ok := fields["limit_guests"].(int); ok {
		invite.LimitGuests = limit
	}
	invite.UpdatedAt = time.Now().UTC()
	r.invites[slug] = invite
	return nil
}

func (r *MemoryInviteRepository) Delete(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invites[slug]; !ok {
		return false, nil
	}
	delete(r.invites, slug)
	return true, nil
}

var _ repositories.IInviteRepository = (*MemoryInviteRepository)(nil)

// MemoryRsvpRepository is an in-memory IRsvpRepository with the same
// single-slot upsert semantics as the Postgres implementation. FailHistory
// makes AppendHistory fail, for exercising the best-effort contract.
type MemoryRsvpRepository struct {
	mu          sync.RWMutex
	rsvps       map[string]models.Rsvp
	history     []models.RsvpHistory
	FailHistory error
}

// NewMemoryRsvpRepository returns an empty in-memory store.
func NewMemoryRsvpRepository() *MemoryRsvpRepository {
	return &MemoryRsvpRepository{rsvps: make(map[string]models.Rsvp)}
}

func (r *MemoryRsvpRepository) FindBySlug(_ context.Context, slug string) (*models.Rsvp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rsvp, ok := r.rsvps[slug]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &rsvp, nil
}

func (r *MemoryRsvpRepository) FindAllNewestFirst(_ context.Context) ([]models.Rsvp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Rsvp, 0, len(r.rsvps))
	for _, rsvp := range r.rsvps {
		out = append(out, rsvp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *MemoryRsvpRepository) Upsert(_ context.Context, rsvp *models.Rsvp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.rsvps[rsvp.Slug]; ok {
		rsvp.CreatedAt = existing.CreatedAt
	} else {
		rsvp.CreatedAt = now
	}
	if rsvp.UpdatedAt.IsZero() {
		rsvp.UpdatedAt = now
	}
	r.rsvps[rsvp.Slug] = *rsvp
	return nil
}

func (r *MemoryRsvpRepository) AppendHistory(_ context.Context, entry *models.RsvpHistory) error {
	if r.FailHistory != nil {
		return r.FailHistory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = uint(len(r.history) + 1)
	entry.CreatedAt = time.Now().UTC()
	r.history = append(r.history, *entry)
	return nil
}

// History returns a copy of the audit rows recorded so far.
func (r *MemoryRsvpRepository) History() []models.RsvpHistory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.RsvpHistory, len(r.history))
	copy(out, r.history)
	return out
}

var _ repositories.IRsvpRepository = (*MemoryRsvpRepository)(nil)
