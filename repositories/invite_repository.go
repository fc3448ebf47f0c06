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

// IInviteRepository is the interface for invite table access.
type IInviteRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Invite, error)
	FindAll(ctx context.Context) ([]models.Invite, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, invite *models.Invite) error
	Upsert(ctx context.Context, invite *models.Invite) error
	UpdateFields(ctx context.Context, slug string, fields map[string]interface{}) error
	Delete(ctx context.Context, slug string) (bool, error)
}

// InviteRepository implements IInviteRepository over GORM.
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository builds a repository over the injected handle. Pass a
// transaction to scope every call to it.
func NewInviteRepository(db *gorm.DB) IInviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindBySlug looks an invite up by exact, case-sensitive slug.
func (r *InviteRepository) FindBySlug(ctx context.Context, slug string) (*models.Invite, error) {
	var invite models.Invite
	err := r.getDB(ctx).Where("slug = ?", slug).First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InviteRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &invite, nil
}

// FindAll returns every invite ordered by name. The database ordering is a
// stable baseline; the service re-sorts with locale-aware collation.
func (r *InviteRepository) FindAll(ctx context.Context) ([]models.Invite, error) {
	var invites []models.Invite
	err := r.getDB(ctx).Order("name asc").Find(&invites).Error
	if err != nil {
		configslog.Log.Error("InviteRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return invites, nil
}

// SlugExists is the collision probe used by the slug generator.
func (r *InviteRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invite{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		configslog.Log.Error("InviteRepository.SlugExists: DB error", zap.String("slug", slug), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new invite. A duplicate slug surfaces as the driver's
// unique violation; the caller decides whether to retry.
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	return r.getDB(ctx).Create(invite).Error
}

// Upsert inserts or fully replaces the invite row keyed by slug.
func (r *InviteRepository) Upsert(ctx context.Context, invite *models.Invite) error {
	return r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "limit_guests", "updated_at"}),
	}).Create(invite).Error
}

// UpdateFields patches only the supplied columns. ErrNotFound when the slug
// does not exist.
func (r *InviteRepository) UpdateFields(ctx context.Context, slug string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.getDB(ctx).Model(&models.Invite{}).Where("slug = ?", slug).Updates(fields)
	if result.Error != nil {
		configslog.Log.Error("InviteRepository.UpdateFields: DB error", zap.String("slug", slug), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the invite row and reports whether one was removed.
func (r *InviteRepository) Delete(ctx context.Context, slug string) (bool, error) {
	result := r.getDB(ctx).Where("slug = ?", slug).Delete(&models.Invite{})
	if result.Error != nil {
		configslog.Log.Error("InviteRepository.Delete: DB error", zap.String("slug", slug), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

var _ IInviteRepository = (*InviteRepository)(nil)
