package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
)

// MigrateInvitesTable creates/updates the invites table.
func MigrateInvitesTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating invites table...")
	if err := db.AutoMigrate(&models.Invite{}); err != nil {
		configslog.Log.Error("failed to migrate invites table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("invites table migrated")
	return nil
}
