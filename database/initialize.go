package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/database/migrations"
	"github.com/josemeldlrs1103/graduacionjosemelendez/database/seeders"
)

// Initialize runs migrations and/or seeders inside a single transaction.
// Either flag may be false; with both false nothing happens.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("neither migrate nor seed requested, nothing to do")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("migrations failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("migrations complete")
		}

		if seed {
			configslog.SLog.Info("running seeders...")
			if err := RunSeeders(tx); err != nil {
				configslog.Log.Error("seeding failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("seeders complete")
		}

		return nil
	})
}

// RunMigrationsInOrder migrates every table; invites first since the seeder
// and the RSVP flows join against it.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateInvitesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateRsvpsTable(db); err != nil {
		return err
	}
	return migrations.MigrateRsvpHistoryTable(db)
}

// RunSeeders loads the initial guest list.
func RunSeeders(db *gorm.DB) error {
	return seeders.SeedInvites(db)
}
