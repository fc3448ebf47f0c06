package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
)

// IRsvpRepository is the interface for rsvps and rsvps_history table access.
type IRsvpRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Rsvp, error)
	FindAllNewestFirst(ctx context.Context) ([]models.Rsvp, error)
	Upsert(ctx context.Context, rsvp *models.Rsvp) error
	AppendHistory(ctx context.Context, entry *models.RsvpHistory) error
}

// RsvpRepository implements IRsvpRepository over GORM.
type RsvpRepository struct {
	db *gorm.DB
}

// NewRsvpRepository builds a repository over the injected handle.
func NewRsvpRepository(db *gorm.DB) IRsvpRepository {
	return &RsvpRepository{db: db}
}

func (r *RsvpRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindBySlug returns the single response recorded for a slug.
func (r *RsvpRepository) FindBySlug(ctx context.Context, slug string) (*models.Rsvp, error) {
	var rsvp models.Rsvp
	err := r.getDB(ctx).Where("slug = ?", slug).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RsvpRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// FindAllNewestFirst returns every response, most recently updated first.
func (r *RsvpRepository) FindAllNewestFirst(ctx context.Context) ([]models.Rsvp, error) {
	var rsvps []models.Rsvp
	err := r.getDB(ctx).Order("updated_at desc").Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RsvpRepository.FindAllNewestFirst: DB error", zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// Upsert inserts or fully replaces the response keyed by slug. The row is a
// single-slot register: attending, guests and attendee_names are always
// overwritten and updated_at advances.
func (r *RsvpRepository) Upsert(ctx context.Context, rsvp *models.Rsvp) error {
	return r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"attending", "guests", "attendee_names", "updated_at"}),
	}).Create(rsvp).Error
}

// AppendHistory inserts one audit row. Callers treat failure as non-fatal.
func (r *RsvpRepository) AppendHistory(ctx context.Context, entry *models.RsvpHistory) error {
	return r.getDB(ctx).Create(entry).Error
}

var _ IRsvpRepository = (*RsvpRepository)(nil)
