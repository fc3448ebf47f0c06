package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
)

// MigrateRsvpsTable creates/updates the rsvps table.
func MigrateRsvpsTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating rsvps table...")
	if err := db.AutoMigrate(&models.Rsvp{}); err != nil {
		configslog.Log.Error("failed to migrate rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("rsvps table migrated")
	return nil
}

// MigrateRsvpHistoryTable creates/updates the append-only rsvps_history
// table. The table is optional at runtime (writes to it are best-effort)
// but always migrated.
func MigrateRsvpHistoryTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating rsvps_history table...")
	if err := db.AutoMigrate(&models.RsvpHistory{}); err != nil {
		configslog.Log.Error("failed to migrate rsvps_history table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("rsvps_history table migrated")
	return nil
}
